package handlers

import (
	"net/http"
	"strings"

	"teacher-rating-api/internal/realtime"

	"github.com/gin-gonic/gin"
)

// RateTeacherPage handles GET /rate-teacher/ (protected)
// Lists every teacher sorted by name.
func (h *Handler) RateTeacherPage(c *gin.Context) {
	teachers, err := h.ratings.ListTeachers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.HTML(http.StatusOK, "rate_teacher.html", gin.H{
		"page":     "Rate teacher",
		"teachers": teachers,
	})
}

// RateTeacher handles POST /rate-teacher/ (protected)
func (h *Handler) RateTeacher(c *gin.Context) {
	var form ratingForm
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}
	value, err := form.Value()
	if err != nil {
		respondError(c, err)
		return
	}

	teacherID := strings.TrimSpace(form.TeacherID)
	if _, err := h.ratings.SubmitRating(c.Request.Context(), c.GetString("user_id"), teacherID, value); err != nil {
		respondError(c, err)
		return
	}

	h.hub.Publish(realtime.EventRatingSubmitted, teacherID)
	c.Redirect(http.StatusFound, "/leaderboard/")
}
