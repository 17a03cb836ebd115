package routes

import (
	"fmt"
	"net/http"

	"teacher-rating-api/internal/handlers"
	"teacher-rating-api/internal/middleware"
	"teacher-rating-api/internal/web"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(h *handlers.Handler, auth middleware.Authenticator) (*gin.Engine, error) {
	// Create a new GIN Router
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery(), middleware.RequestLogger())

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	ginRouter.SetHTMLTemplate(tmpl)

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Teacher rating server is running",
		})
	})

	// Public routes (no authentication required)
	ginRouter.GET("/", h.Home)
	ginRouter.GET("/register/", h.RegisterPage)
	ginRouter.POST("/register/", h.Register)
	ginRouter.GET("/log-in/", h.LoginPage)
	ginRouter.POST("/log-in/", h.Login)
	ginRouter.GET("/log-out/", h.Logout)
	ginRouter.GET("/leaderboard/", h.Leaderboard)
	ginRouter.GET("/ws/leaderboard", h.LeaderboardFeed)

	// Protected routes (authentication required)
	protectedRoutes := ginRouter.Group("")
	protectedRoutes.Use(middleware.RequireAuth(auth))
	{
		protectedRoutes.GET("/add-teacher/", h.AddTeacherPage)
		protectedRoutes.POST("/add-teacher/", h.AddTeacher)
		protectedRoutes.GET("/rate-teacher/", h.RateTeacherPage)
		protectedRoutes.POST("/rate-teacher/", h.RateTeacher)
	}

	return ginRouter, nil
}
