package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/classpoint/internal/app/controllers"
	"github.com/emrek/classpoint/internal/app/models"
	"github.com/emrek/classpoint/internal/app/models/dto"
	"github.com/emrek/classpoint/internal/middleware"
	"github.com/emrek/classpoint/internal/pkg/flash"
	"github.com/emrek/classpoint/internal/pkg/validation"
)

// SetupRouter configures all application routes. Authorization is applied
// declaratively here and nowhere else: every route states which roles may
// read and which may write.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	announcementController *controllers.AnnouncementController,
	recordingController *controllers.RecordingController,
	mentorController *controllers.MentorController,
	authMiddleware *middleware.AuthMiddleware,
) {
	validation.RegisterCustomValidators()

	// --- Public routes ---
	router.GET("/", func(c *gin.Context) {
		notice := flash.Pop(c)
		var noticeData *dto.Notice
		if notice != nil {
			noticeData = &dto.Notice{Level: string(notice.Level), Message: notice.Message}
		}
		c.JSON(http.StatusOK, dto.PageResponse{Page: "index", Notice: noticeData})
	})

	router.GET("/signup", authController.ShowSignup)
	router.POST("/signup", authController.Signup)
	router.GET("/login", authController.ShowLogin)
	router.POST("/login", authController.Login)
	router.GET("/logout", authController.Logout)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.RequireSession())
	{
		// Dashboards require the exact role
		authenticated.GET("/student_dashboard", authMiddleware.RequireRole(models.RoleStudent), dashboardController.Student)
		authenticated.GET("/teacher_dashboard", authMiddleware.RequireRole(models.RoleTeacher), dashboardController.Teacher)
		authenticated.GET("/admin-dashboard", authMiddleware.RequireRole(models.RoleAdmin), dashboardController.Admin)

		// List views are readable by any authenticated user; writes are
		// gated per role
		authenticated.GET("/announcements", announcementController.List)
		authenticated.POST("/announcements", authMiddleware.RequireRole(models.RoleTeacher), announcementController.Create)

		authenticated.GET("/recordings", recordingController.List)
		authenticated.POST("/recordings", authMiddleware.RequireRole(models.RoleTeacher), recordingController.Upload)

		authenticated.GET("/mentors", mentorController.List)
		authenticated.POST("/mentors", authMiddleware.RequireRole(models.RoleStudent), mentorController.Create)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
