package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/classpoint/internal/app/models/dto"
	"github.com/emrek/classpoint/internal/app/services"
	"github.com/emrek/classpoint/internal/middleware"
	"github.com/emrek/classpoint/internal/pkg/flash"
)

// AnnouncementController handles posting and listing announcements
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// List renders all announcements, newest first
func (ctl *AnnouncementController) List(c *gin.Context) {
	announcements, err := ctl.announcementService.List(c.Request.Context())
	if err != nil {
		middleware.HandleWebError(c, err, "/")
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Page:   "announcements",
		Items:  announcements,
		Notice: noticeFrom(flash.Pop(c)),
	})
}

// Create handles the announcement posting form and falls through to the
// list view.
func (ctl *AnnouncementController) Create(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(c, err, "/announcements")
		return
	}

	if _, err := ctl.announcementService.Create(c.Request.Context(), &req); err != nil {
		middleware.HandleWebError(c, err, "/announcements")
		return
	}

	flash.Set(c, flash.LevelSuccess, "Announcement added successfully!")
	c.Redirect(http.StatusSeeOther, "/announcements")
}
