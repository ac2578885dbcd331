package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/classpoint/internal/app/models/dto"
	"github.com/emrek/classpoint/internal/app/services"
	"github.com/emrek/classpoint/internal/middleware"
	"github.com/emrek/classpoint/internal/pkg/flash"
)

// MentorController handles mentor requests and listing
type MentorController struct {
	mentorService services.MentorService
}

// NewMentorController creates a new MentorController
func NewMentorController(mentorService services.MentorService) *MentorController {
	return &MentorController{
		mentorService: mentorService,
	}
}

// List renders all mentors
func (ctl *MentorController) List(c *gin.Context) {
	mentors, err := ctl.mentorService.List(c.Request.Context())
	if err != nil {
		middleware.HandleWebError(c, err, "/")
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Page:   "mentors",
		Items:  mentors,
		Notice: noticeFrom(flash.Pop(c)),
	})
}

// Create handles the mentor request form and falls through to the list view
func (ctl *MentorController) Create(c *gin.Context) {
	var req dto.RequestMentorRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(c, err, "/mentors")
		return
	}

	if _, err := ctl.mentorService.Request(c.Request.Context(), &req); err != nil {
		middleware.HandleWebError(c, err, "/mentors")
		return
	}

	flash.Set(c, flash.LevelSuccess, "Mentor request added successfully!")
	c.Redirect(http.StatusSeeOther, "/mentors")
}
