package handlers

import (
	"net/http"
	"strings"

	"teacher-rating-api/internal/realtime"

	"github.com/gin-gonic/gin"
)

// AddTeacherPage handles GET /add-teacher/ (protected)
func (h *Handler) AddTeacherPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_teacher.html", gin.H{"page": "Add teacher"})
}

// AddTeacher handles POST /add-teacher/ (protected)
func (h *Handler) AddTeacher(c *gin.Context) {
	var form teacherForm
	if err := bindForm(c, &form); err != nil {
		respondError(c, err)
		return
	}

	teacher, err := h.ratings.AddTeacher(c.Request.Context(), strings.TrimSpace(form.Name), strings.TrimSpace(form.School))
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Publish(realtime.EventTeacherAdded, teacher.ID)
	c.Redirect(http.StatusFound, "/leaderboard/")
}
