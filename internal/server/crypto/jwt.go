// Package crypto содержит криптографические примитивы,
// используемые сервером maono-api.
//
// В частности, пакет отвечает за:
//   - генерацию и подпись сессионных JWT-токенов;
//   - настройку параметров токенов (issuer, audience, TTL);
//   - хэширование и проверку паролей пользователей.
package crypto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig описывает параметры генерации сессионного токена.
type JWTConfig struct {
	// Issuer — значение поля iss (кто выдал токен). Опционально.
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен). Опционально.
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
	// TokenTTL — срок жизни сессионного токена.
	TokenTTL time.Duration
}

// SessionClaims — полезная нагрузка сессионного токена.
//
// Помимо стандартных claims сервер кладёт email пользователя,
// чтобы защищённые хендлеры не ходили за ним в базу.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewSessionToken создаёт и подписывает сессионный JWT для пользователя.
//
// Токен содержит:
//   - sub (userID)
//   - email
//   - iat (IssuedAt)
//   - exp (IssuedAt + TokenTTL)
//   - iss/aud, если заданы в конфиге
//
// Используется алгоритм подписи HS256.
// В случае ошибки подписи возвращается непустая ошибка.
func NewSessionToken(userID, email string, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
	}
	if cfg.Issuer != "" {
		claims.Issuer = cfg.Issuer
	}
	if cfg.Audience != "" {
		claims.Audience = []string{cfg.Audience}
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}
