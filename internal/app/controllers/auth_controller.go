package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emrek/classpoint/internal/app/models"
	"github.com/emrek/classpoint/internal/app/models/dto"
	"github.com/emrek/classpoint/internal/app/services"
	"github.com/emrek/classpoint/internal/middleware"
	"github.com/emrek/classpoint/internal/pkg/auth"
	"github.com/emrek/classpoint/internal/pkg/flash"
)

// AuthController handles signup, login and logout
type AuthController struct {
	authService services.AuthService
	sessions    *auth.SessionService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, sessions *auth.SessionService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// ShowSignup renders the signup page
func (ctl *AuthController) ShowSignup(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PageResponse{
		Page:   "signup",
		Notice: noticeFrom(flash.Pop(c)),
	})
}

// Signup handles the signup form. Success redirects to the login page;
// a taken username or invalid role redirects back with a notice.
func (ctl *AuthController) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(c, err, "/signup")
		return
	}

	if _, err := ctl.authService.Signup(c.Request.Context(), &req); err != nil {
		middleware.HandleWebError(c, err, "/signup")
		return
	}

	flash.Set(c, flash.LevelSuccess, "Signup successful! Please log in.")
	c.Redirect(http.StatusSeeOther, "/login")
}

// ShowLogin renders the login page
func (ctl *AuthController) ShowLogin(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PageResponse{
		Page:   "login",
		Notice: noticeFrom(flash.Pop(c)),
	})
}

// Login handles the login form. On success it sets the session cookie and
// redirects to the dashboard matching the user's role.
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(c, err, "/login")
		return
	}

	user, err := ctl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleWebError(c, err, "/login")
		return
	}

	token, err := ctl.sessions.Issue(user)
	if err != nil {
		middleware.HandleWebError(c, err, "/login")
		return
	}

	c.SetCookie(ctl.sessions.CookieName(), token, ctl.sessions.CookieMaxAge(), "/", "", ctl.sessions.SecureCookie(), true)
	flash.Set(c, flash.LevelSuccess, "Login successful!")
	c.Redirect(http.StatusSeeOther, DashboardPath(user.Role))
}

// Logout clears the session cookie unconditionally and redirects to the
// landing page.
func (ctl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(ctl.sessions.CookieName(), "", -1, "/", "", ctl.sessions.SecureCookie(), true)
	flash.Set(c, flash.LevelInfo, "Logged out successfully.")
	c.Redirect(http.StatusSeeOther, "/")
}

// DashboardPath returns the dashboard route for a role
func DashboardPath(role models.Role) string {
	switch role {
	case models.RoleTeacher:
		return "/teacher_dashboard"
	case models.RoleAdmin:
		return "/admin-dashboard"
	default:
		return "/student_dashboard"
	}
}

// noticeFrom converts a popped flash notice into its response form
func noticeFrom(notice *flash.Notice) *dto.Notice {
	if notice == nil {
		return nil
	}
	return &dto.Notice{
		Level:   string(notice.Level),
		Message: notice.Message,
	}
}
