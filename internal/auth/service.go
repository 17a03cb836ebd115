// Package auth implements registration, login and session checks.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"teacher-rating-api/internal/apperr"
	"teacher-rating-api/internal/models"
	"teacher-rating-api/internal/session"
	"teacher-rating-api/internal/store"

	"github.com/google/uuid"
)

// UserStore is the subset of the credential store the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
}

// Service owns the Anonymous -> Authenticated -> Anonymous session lifecycle.
type Service struct {
	users    UserStore
	sessions session.Store
	hasher   Hasher
	tokens   *TokenSigner
	ttl      time.Duration
}

func NewService(users UserStore, sessions session.Store, hasher Hasher, tokens *TokenSigner, ttl time.Duration) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
		ttl:      ttl,
	}
}

// Register creates a new account.
func (s *Service) Register(ctx context.Context, username, password string) (models.User, error) {
	if err := CheckPasswordStrength(password); err != nil {
		return models.User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, err
	}

	_, err = s.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return models.User{}, apperr.Conflict("User exists", nil)
	case !errors.Is(err, store.ErrNotFound):
		return models.User{}, fmt.Errorf("lookup user: %w", err)
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: hash,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		// Lost the race against a concurrent registration; the unique index caught it.
		if errors.Is(err, store.ErrDuplicate) {
			return models.User{}, apperr.Conflict("User exists", err)
		}
		return models.User{}, err
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login verifies the credentials and opens a session. The returned token
// belongs in the session cookie.
func (s *Service) Login(ctx context.Context, username, password string) (string, models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return "", models.User{}, apperr.NotFound("User doesn't exist")
	}
	if err != nil {
		return "", models.User{}, fmt.Errorf("lookup user: %w", err)
	}

	if !VerifyPassword(password, user.Password) {
		return "", models.User{}, apperr.Auth("Password doesn't match")
	}

	sessionID, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", models.User{}, err
	}
	token, err := s.tokens.Sign(sessionID, s.ttl)
	if err != nil {
		_ = s.sessions.Delete(ctx, sessionID)
		return "", models.User{}, fmt.Errorf("sign session token: %w", err)
	}

	slog.Info("user logged in", "user_id", user.ID)
	return token, user, nil
}

// Logout ends the session referenced by token.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return apperr.Session("Not logged in")
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return apperr.Session("Not logged in")
	}

	err = s.sessions.Delete(ctx, claims.SessionID)
	if errors.Is(err, session.ErrNotFound) {
		return apperr.Session("Not logged in")
	}
	return err
}

// Authenticate resolves token to an existing user. The user is re-read from
// the store on every call.
func (s *Service) Authenticate(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, apperr.Session("Not logged in")
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return models.User{}, apperr.Session("Not logged in")
	}

	userID, err := s.sessions.Get(ctx, claims.SessionID)
	if errors.Is(err, session.ErrNotFound) {
		return models.User{}, apperr.Session("Not logged in")
	}
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, apperr.Session("Not logged in")
	}
	if err != nil {
		return models.User{}, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}
