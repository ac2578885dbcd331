package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/classpoint/internal/app/models/dto"
	"github.com/emrek/classpoint/internal/middleware"
	"github.com/emrek/classpoint/internal/pkg/flash"
)

// DashboardController renders the role dashboards. Role gating happens in
// the route middleware; by the time a handler runs the session is known to
// carry the right role.
type DashboardController struct{}

// NewDashboardController creates a new DashboardController
func NewDashboardController() *DashboardController {
	return &DashboardController{}
}

// Student renders the student dashboard
func (ctl *DashboardController) Student(c *gin.Context) {
	ctl.render(c, "student_dashboard")
}

// Teacher renders the teacher dashboard
func (ctl *DashboardController) Teacher(c *gin.Context) {
	ctl.render(c, "teacher_dashboard")
}

// Admin renders the admin dashboard
func (ctl *DashboardController) Admin(c *gin.Context) {
	ctl.render(c, "admin_dashboard")
}

func (ctl *DashboardController) render(c *gin.Context, page string) {
	session, _ := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, dto.PageResponse{
		Page: page,
		Data: gin.H{
			"username": session.Username,
			"role":     session.Role,
		},
		Notice: noticeFrom(flash.Pop(c)),
	})
}
