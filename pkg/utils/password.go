package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	TemporaryPasswordLength  = 8
	TemporaryPasswordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789@#$%-_*?"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares in constant time via bcrypt.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// GenerateTemporaryPassword draws TemporaryPasswordLength characters from
// TemporaryPasswordCharset using crypto/rand.
func GenerateTemporaryPassword() (string, error) {
	limit := big.NewInt(int64(len(TemporaryPasswordCharset)))
	password := make([]byte, TemporaryPasswordLength)
	for i := range password {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to generate temporary password: %w", err)
		}
		password[i] = TemporaryPasswordCharset[n.Int64()]
	}
	return string(password), nil
}
