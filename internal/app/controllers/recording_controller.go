package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/classpoint/internal/app/models/dto"
	"github.com/emrek/classpoint/internal/app/services"
	"github.com/emrek/classpoint/internal/middleware"
	"github.com/emrek/classpoint/internal/pkg/apperrors"
	"github.com/emrek/classpoint/internal/pkg/flash"
)

// RecordingController handles recording uploads and listing
type RecordingController struct {
	recordingService services.RecordingService
}

// NewRecordingController creates a new RecordingController
func NewRecordingController(recordingService services.RecordingService) *RecordingController {
	return &RecordingController{
		recordingService: recordingService,
	}
}

// List renders all recordings, newest first
func (ctl *RecordingController) List(c *gin.Context) {
	recordings, err := ctl.recordingService.List(c.Request.Context())
	if err != nil {
		middleware.HandleWebError(c, err, "/")
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Page:   "recordings",
		Items:  recordings,
		Notice: noticeFrom(flash.Pop(c)),
	})
}

// Upload handles the recording upload form. A missing file part or a
// disallowed extension surfaces as a visible notice; no row is inserted
// on any failure.
func (ctl *RecordingController) Upload(c *gin.Context) {
	var req dto.UploadRecordingRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(c, err, "/recordings")
		return
	}

	file, err := c.FormFile("video")
	if err != nil {
		middleware.HandleWebError(c, apperrors.ErrNoFileSelected, "/recordings")
		return
	}

	if _, err := ctl.recordingService.Upload(c.Request.Context(), &req, file); err != nil {
		middleware.HandleWebError(c, err, "/recordings")
		return
	}

	flash.Set(c, flash.LevelSuccess, "Recording uploaded successfully!")
	c.Redirect(http.StatusSeeOther, "/recordings")
}
