package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"teacher-rating-api/internal/apperr"
	"teacher-rating-api/internal/leaderboard"
	"teacher-rating-api/internal/models"
	"teacher-rating-api/internal/realtime"

	"github.com/gin-gonic/gin"
)

// AuthService is what the account handlers need from auth.Service.
type AuthService interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (string, models.User, error)
	Logout(ctx context.Context, token string) error
}

// RatingService is what the teacher and rating handlers need from rating.Service.
type RatingService interface {
	AddTeacher(ctx context.Context, name, school string) (models.Teacher, error)
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	SubmitRating(ctx context.Context, userID, teacherID string, value int) (models.Rating, error)
}

// Leaderboard computes the ranked view.
type Leaderboard interface {
	Compute(ctx context.Context) ([]leaderboard.Entry, error)
}

// Handler carries the request-independent dependencies of every endpoint.
type Handler struct {
	auth        AuthService
	ratings     RatingService
	leaderboard Leaderboard
	hub         *realtime.Hub
	sessionTTL  time.Duration
	secure      bool
}

// Options configures the session cookie.
type Options struct {
	SessionTTL   time.Duration
	SecureCookie bool
}

func New(auth AuthService, ratings RatingService, board Leaderboard, hub *realtime.Hub, opts Options) *Handler {
	return &Handler{
		auth:        auth,
		ratings:     ratings,
		leaderboard: board,
		hub:         hub,
		sessionTTL:  opts.SessionTTL,
		secure:      opts.SecureCookie,
	}
}

// Home handles GET /
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{"page": "Home"})
}

// respondError writes domain errors as plain text with status 200 and hides
// everything else behind a 500.
func respondError(c *gin.Context, err error) {
	if e, ok := apperr.As(err); ok {
		slog.Info("request rejected",
			"path", c.Request.URL.Path,
			"kind", e.Kind.String(),
			"fields", e.Fields,
			"message", e.Message,
		)
		c.String(http.StatusOK, e.Message)
		return
	}

	slog.Error("request failed", "path", c.Request.URL.Path, "error", err)
	c.String(http.StatusInternalServerError, "Internal server error")
}
