package service

import (
	"context"
	"errors"
	"strings"

	"github.com/maono-vis/maono-api/internal/server/config"
	"github.com/maono-vis/maono-api/internal/server/crypto"
	serr "github.com/maono-vis/maono-api/internal/shared/errors"
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей (signup сразу выдаёт токен)
//   - аутентификация (логин)
//   - выпуск stateless сессионных токенов
//
// Отзыва токенов нет: компрометация лечится ротацией ключа подписи,
// что разом инвалидирует все выданные токены.
type AuthService struct {
	users UsersRepo

	hasher crypto.PasswordHasher
	jwt    crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		hasher: crypto.PasswordHasher{
			Scheme:     cfg.Password.Hasher,
			BcryptCost: cfg.Password.Bcrypt.Cost,
			Argon2: crypto.Argon2Params{
				Time:      cfg.Password.Argon2.Time,
				MemoryKiB: cfg.Password.Argon2.MemoryKiB,
				Threads:   cfg.Password.Argon2.Threads,
				KeyLen:    cfg.Password.Argon2.KeyLen,
				SaltLen:   cfg.Password.Argon2.SaltLen,
			},
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			TokenTTL:   cfg.Auth.TokenTTL,
		},
	}
}

// SignUp регистрирует нового пользователя и сразу выдаёт сессионный токен.
//
// Валидация:
//   - email обязателен (формат не проверяется, "admin@localhost" допустим)
//   - пароль обязателен и передаётся в хэшер как есть, пробелы значимы
//
// Plaintext пароля нигде не сохраняется и не логируется.
//
// Ошибки:
//   - ErrInvalidInput при некорректных данных
//   - ErrAlreadyExists если email уже зарегистрирован
func (s *AuthService) SignUp(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return "", serr.ErrInvalidInput
	}

	hash, err := s.hasher.HashPassword(password)
	if err != nil {
		return "", serr.ErrInternal
	}

	userID, err := s.users.Create(ctx, email, hash)
	if err != nil {
		return "", err
	}

	token, err := crypto.NewSessionToken(userID.String(), email, s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}
	return token, nil
}

// Login аутентифицирует пользователя и выдаёт сессионный токен.
//
// Поведение:
//   - не раскрывает факт существования email (всегда ErrInvalidCredentials)
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", serr.ErrInvalidInput
	}
	// получаем юзера по email
	userID, hash, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return "", serr.ErrInvalidCredentials
		}
		return "", err
	}
	// проверяем пароль
	ok, err := crypto.VerifyPassword(password, hash)
	if err != nil {
		return "", serr.ErrInternal
	}
	if !ok {
		return "", serr.ErrInvalidCredentials
	}
	// выпускаем сессионный токен
	token, err := crypto.NewSessionToken(userID.String(), email, s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}
	return token, nil
}
