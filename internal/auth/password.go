package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = bcrypt.DefaultCost

// dummyHash is compared against when the account does not exist, so a login
// probe costs the same whether or not the email is registered.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("tmsiti-dummy-password"), defaultBcryptCost)

// HashPassword hashes a plaintext password. bcrypt salts internally, so the
// same input produces a different digest on every call.
func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password must not be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), defaultBcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword checks a candidate password against a stored digest. A
// malformed digest and a wrong password both come back as a plain error.
func VerifyPassword(hash, candidate string) error {
	if strings.TrimSpace(hash) == "" {
		return errors.New("stored password hash is empty")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
}

// BurnVerification performs a comparison against a throwaway digest. Callers
// use it on the unknown-account path to keep timing uniform.
func BurnVerification(candidate string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(candidate))
}
