package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"teacher-rating-api/internal/apperr"

	"golang.org/x/crypto/bcrypt"
)

// SpecialChars is the set of symbols a password must draw at least one character from.
const SpecialChars = `!@#$%^&*(),.?":{}|<>`

const minPasswordLength = 8

const weakPasswordMessage = "Password must be at least 8 characters and have at least one number and special character"

// CheckPasswordStrength enforces length >= 8, a digit and a special character.
func CheckPasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength ||
		!strings.ContainsFunc(password, unicode.IsDigit) ||
		!strings.ContainsAny(password, SpecialChars) {
		return apperr.Validation(weakPasswordMessage, "password")
	}
	return nil
}

// Hasher produces the stored form of a password.
type Hasher interface {
	Hash(password string) (string, error)
}

// NewHasher returns the hasher registered under name ("sha256" or "bcrypt").
func NewHasher(name string) (Hasher, error) {
	switch name {
	case "sha256", "":
		return SHA256Hasher{}, nil
	case "bcrypt":
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	}
	return nil, fmt.Errorf("unknown password hasher %q", name)
}

// SHA256Hasher stores the lowercase hex sha256 digest of the password.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// BcryptHasher stores a salted bcrypt hash.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

// VerifyPassword checks password against a stored hash of either supported kind.
func VerifyPassword(password, stored string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	digest, _ := SHA256Hasher{}.Hash(password)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(stored)) == 1
}
