package auth

import (
	"testing"

	"teacher-rating-api/internal/apperr"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCheckPasswordStrength(t *testing.T) {
	weak := []string{
		"",
		"Ab1!",       // too short
		"123456!",    // seven characters
		"Abcdefgh!",  // no digit
		"Abcdefgh1",  // no special
		"abc def 12", // space is not special
	}

	for _, pw := range weak {
		err := CheckPasswordStrength(pw)
		require.ErrorIs(t, err, apperr.ErrValidation, pw)
	}

	strong := []string{"Abc12345!", "1234567!", "pass{word}9", `quote"me1x`}
	for _, pw := range strong {
		require.NoError(t, CheckPasswordStrength(pw), pw)
	}
}

func TestSHA256Hasher(t *testing.T) {
	h, err := NewHasher("sha256")
	require.NoError(t, err)

	hash, err := h.Hash("Abc12345!")
	require.NoError(t, err)
	require.Len(t, hash, 64)

	empty, _ := h.Hash("")
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", empty)

	require.True(t, VerifyPassword("Abc12345!", hash))
	require.False(t, VerifyPassword("Abc12345?", hash))
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}
	hash, err := h.Hash("Abc12345!")
	require.NoError(t, err)

	require.True(t, VerifyPassword("Abc12345!", hash))
	require.False(t, VerifyPassword("wrong", hash))
}

func TestNewHasher_Unknown(t *testing.T) {
	_, err := NewHasher("md5")
	require.Error(t, err)
}
