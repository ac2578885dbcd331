package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/classpoint/internal/pkg/apperrors"
	"github.com/emrek/classpoint/internal/pkg/flash"
	"github.com/emrek/classpoint/internal/pkg/logger"
)

// HandleWebError recovers an error at the request boundary: every failure
// becomes a flash notice plus a redirect, never a hard failure or a stack
// trace. fallbackPath is used for errors with no dedicated destination.
func HandleWebError(c *gin.Context, err error, fallbackPath string) {
	switch {
	case errors.Is(err, apperrors.ErrUsernameTaken):
		flash.Set(c, flash.LevelDanger, "Username already exists! Please choose a different one.")
		c.Redirect(http.StatusSeeOther, "/signup")
	case errors.Is(err, apperrors.ErrInvalidRole):
		flash.Set(c, flash.LevelDanger, "Invalid role! Choose student, teacher or admin.")
		c.Redirect(http.StatusSeeOther, "/signup")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		flash.Set(c, flash.LevelDanger, "Invalid username or password!")
		c.Redirect(http.StatusSeeOther, "/login")
	case errors.Is(err, apperrors.ErrAccessDenied):
		flash.Set(c, flash.LevelDanger, "Access denied!")
		c.Redirect(http.StatusSeeOther, "/login")
	case errors.Is(err, apperrors.ErrNoFileSelected):
		flash.Set(c, flash.LevelDanger, "No file selected!")
		c.Redirect(http.StatusSeeOther, "/recordings")
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		flash.Set(c, flash.LevelDanger, "Unsupported file type! Allowed: mp4, mov, avi, mkv.")
		c.Redirect(http.StatusSeeOther, "/recordings")
	case errors.Is(err, apperrors.ErrValidationFailed):
		flash.Set(c, flash.LevelDanger, err.Error())
		c.Redirect(http.StatusSeeOther, fallbackPath)
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled request error")
		flash.Set(c, flash.LevelDanger, "Something went wrong. Please try again.")
		c.Redirect(http.StatusSeeOther, fallbackPath)
	}
	c.Abort()
}

// HandleBindingError recovers a form binding/validation failure the same
// way: notice plus redirect back to the submitting form.
func HandleBindingError(c *gin.Context, err error, formPath string) {
	logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Form validation failed")
	HandleWebError(c, apperrors.NewValidationError("Please fill in all required fields correctly."), formPath)
}
