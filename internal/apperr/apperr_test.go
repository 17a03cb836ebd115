package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs_MatchesByKind(t *testing.T) {
	err := fmt.Errorf("register: %w", Conflict("User exists", nil))

	require.ErrorIs(t, err, ErrConflict)
	require.NotErrorIs(t, err, ErrNotFound)

	e, ok := As(err)
	require.True(t, ok)
	require.Equal(t, "User exists", e.Message)
}

func TestError_Message(t *testing.T) {
	require.Equal(t, "Fields not filled (name, school)", Validation("Fields not filled", "name", "school").Error())
	require.Equal(t, "not_found", (&Error{Kind: KindNotFound}).Error())

	cause := errors.New("UNIQUE constraint failed")
	err := Conflict("Teacher already exists", cause)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "UNIQUE constraint failed")
}

func TestAs_NonDomainError(t *testing.T) {
	_, ok := As(errors.New("disk full"))
	require.False(t, ok)
}
