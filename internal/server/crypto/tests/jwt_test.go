package tests

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	crypt "github.com/maono-vis/maono-api/internal/server/crypto"
)

func TestNewSessionToken_Success(t *testing.T) {
	t.Parallel()
	cfg := crypt.JWTConfig{
		Issuer:     "maono-api",
		Audience:   "maono-web",
		SigningKey: "supersecretkeysupersecretkey123456",
		TokenTTL:   8 * time.Hour,
	}

	userID := "user-123"
	email := "user@example.com"

	tokenStr, err := crypt.NewSessionToken(userID, email, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokenStr == "" {
		t.Fatal("expected non-empty token string")
	}

	// Парсим и валидируем токен
	parsed, err := jwt.ParseWithClaims(
		tokenStr,
		&crypt.SessionClaims{},
		func(token *jwt.Token) (any, error) {
			// Проверяем алгоритм
			if token.Method != jwt.SigningMethodHS256 {
				t.Fatalf("unexpected signing method: %v", token.Method)
			}
			return []byte(cfg.SigningKey), nil
		},
	)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}

	if !parsed.Valid {
		t.Fatal("token is not valid")
	}

	claims, ok := parsed.Claims.(*crypt.SessionClaims)
	if !ok {
		t.Fatal("claims type assertion failed")
	}

	if claims.Subject != userID {
		t.Fatalf("expected subject %q, got %q", userID, claims.Subject)
	}
	if claims.Email != email {
		t.Fatalf("expected email %q, got %q", email, claims.Email)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %q, got %q", cfg.Issuer, claims.Issuer)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != cfg.Audience {
		t.Fatalf("expected audience %q, got %v", cfg.Audience, claims.Audience)
	}

	if claims.ExpiresAt == nil {
		t.Fatal("ExpiresAt is nil")
	}
	if time.Until(claims.ExpiresAt.Time) <= 0 {
		t.Fatal("token already expired")
	}
	// TTL именно из конфига
	if claims.IssuedAt == nil {
		t.Fatal("IssuedAt is nil")
	}
	if got := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time); got != cfg.TokenTTL {
		t.Fatalf("expected ttl %v, got %v", cfg.TokenTTL, got)
	}
}

func TestNewSessionToken_NoIssuerAudience(t *testing.T) {
	t.Parallel()
	cfg := crypt.JWTConfig{
		SigningKey: "supersecretkeysupersecretkey123456",
		TokenTTL:   time.Minute,
	}

	tokenStr, err := crypt.NewSessionToken("u1", "a@b.c", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &crypt.SessionClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}

	claims := parsed.Claims.(*crypt.SessionClaims)
	if claims.Issuer != "" {
		t.Fatalf("expected empty issuer, got %q", claims.Issuer)
	}
	if len(claims.Audience) != 0 {
		t.Fatalf("expected empty audience, got %v", claims.Audience)
	}
}

func TestNewSessionToken_WrongKeyDoesNotValidate(t *testing.T) {
	t.Parallel()
	cfg := crypt.JWTConfig{
		SigningKey: "keykeykeykeykeykeykeykeykeykey12",
		TokenTTL:   time.Minute,
	}

	tokenStr, err := crypt.NewSessionToken("u1", "a@b.c", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = jwt.ParseWithClaims(tokenStr, &crypt.SessionClaims{}, func(token *jwt.Token) (any, error) {
		return []byte("another-key-another-key-another!"), nil
	})
	if err == nil {
		t.Fatal("expected validation error with wrong key")
	}
}
