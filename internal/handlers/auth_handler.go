package handlers

import (
	"net/http"
	"strings"

	"teacher-rating-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterPage handles GET /register/
func (h *Handler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"page": "Register"})
}

// Register handles POST /register/
func (h *Handler) Register(c *gin.Context) {
	var form credentialsForm
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.auth.Register(c.Request.Context(), strings.TrimSpace(form.Username), form.Password); err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, middleware.LoginPath)
}

// LoginPage handles GET /log-in/
func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"page": "Log in"})
}

// Login handles POST /log-in/
// On success the signed session token is stored in the session cookie.
func (h *Handler) Login(c *gin.Context) {
	var form credentialsForm
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}

	token, _, err := h.auth.Login(c.Request.Context(), strings.TrimSpace(form.Username), form.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	// The new session replaces whatever the browser held before.
	if previous, err := c.Cookie(middleware.SessionCookie); err == nil && previous != "" {
		_ = h.auth.Logout(c.Request.Context(), previous)
	}

	maxAge := 0 // browser-session cookie
	if h.sessionTTL > 0 {
		maxAge = int(h.sessionTTL.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", h.secure, true)

	c.Redirect(http.StatusFound, "/")
}

// Logout handles GET /log-out/
func (h *Handler) Logout(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookie)

	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secure, true)
	c.Redirect(http.StatusFound, middleware.LoginPath)
}
