package tests

import (
	"github.com/maono-vis/maono-api/internal/server/crypto"
)

// hashPassword — bcrypt с минимальным cost, чтобы тесты не тормозили
func hashPassword(password string) (string, error) {
	return crypto.PasswordHasher{Scheme: "bcrypt", BcryptCost: 4}.HashPassword(password)
}
