package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Leaderboard handles GET /leaderboard/
// Renders HTML by default; clients asking for JSON get the raw entries.
func (h *Handler) Leaderboard(c *gin.Context) {
	entries, err := h.leaderboard.Compute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, gin.H{
			"teachers": entries,
			"count":    len(entries),
		})
		return
	}

	c.HTML(http.StatusOK, "leaderboard.html", gin.H{
		"page":            "Leaderboard",
		"teacher_ratings": entries,
	})
}
