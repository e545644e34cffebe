// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	serr "github.com/maono-vis/maono-api/internal/shared/errors"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// identityKey — ключ контекста, под которым хранится Identity
// аутентифицированного пользователя.
const identityKey ctxKey = "identity"

// Identity — личность пользователя, извлечённая из сессионного токена.
type Identity struct {
	UserID string
	Email  string
}

// JWTVerifier инкапсулирует параметры проверки сессионных токенов.
//
// Используется в HTTP middleware для:
//   - проверки подписи токена
//   - валидации issuer и audience (если заданы)
//   - извлечения userID и email из claims
type JWTVerifier struct {
	SigningKey string // симметричный ключ для подписи (HS256)
	Issuer     string // ожидаемый issuer (опционально)
	Audience   string // ожидаемая audience (опционально)
}

// NewJWTVerifier создаёт новый JWTVerifier с заданными параметрами.
func NewJWTVerifier(signingKey, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{SigningKey: signingKey, Issuer: issuer, Audience: audience}
}

// ContextWithIdentity кладёт Identity пользователя в контекст.
// Используется самим middleware и тестами хендлеров.
func ContextWithIdentity(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// IdentityFromContext извлекает личность аутентифицированного пользователя
// из контекста.
//
// Возвращает:
//   - Identity
//   - false, если пользователь не аутентифицирован
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	v := ctx.Value(identityKey)
	id, ok := v.(Identity)
	return id, ok
}

// AuthMiddleware возвращает HTTP middleware для проверки сессионных токенов.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <token>
//   - валидирует подпись и claims токена (только HS256)
//   - отклоняет просроченные токены без grace-периода
//   - сохраняет Identity (userID + email) в context.Context
//
// В случае ошибки возвращает HTTP 401 с JSON-телом ошибки.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				writeAuthError(w, serr.ErrMissingToken)
				return
			}

			claims := &sessionClaims{}

			parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
			_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				return []byte(v.SigningKey), nil
			})

			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					writeAuthError(w, serr.ErrTokenExpired)
					return
				}
				writeAuthError(w, serr.ErrInvalidToken)
				return
			}

			if v.Issuer != "" && claims.Issuer != v.Issuer {
				writeAuthError(w, serr.ErrInvalidToken)
				return
			}

			if v.Audience != "" {
				ok := false
				for _, aud := range claims.Audience {
					if aud == v.Audience {
						ok = true
						break
					}
				}
				if !ok {
					writeAuthError(w, serr.ErrInvalidToken)
					return
				}
			}

			userID := strings.TrimSpace(claims.Subject)
			if userID == "" {
				writeAuthError(w, serr.ErrInvalidToken)
				return
			}

			ident := Identity{UserID: userID, Email: claims.Email}
			ctx := ContextWithIdentity(r.Context(), ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionClaims дублирует crypto.SessionClaims, чтобы middleware
// не зависел от серверного crypto-пакета.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// writeAuthError пишет 401 с JSON-телом {"error": "..."}.
// CORS-заголовки уже выставлены CORS middleware выше по цепочке.
func writeAuthError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
