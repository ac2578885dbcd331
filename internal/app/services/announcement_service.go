package services

import (
	"context"
	"fmt"

	"github.com/emrek/classpoint/internal/app/models"
	"github.com/emrek/classpoint/internal/app/models/dto"
	"github.com/emrek/classpoint/internal/app/repositories"
)

// AnnouncementService defines the interface for announcement operations
type AnnouncementService interface {
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error)
	List(ctx context.Context) ([]*models.Announcement, error)
}

// announcementServiceImpl implements AnnouncementService
type announcementServiceImpl struct {
	announcementRepo *repositories.AnnouncementRepository
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(announcementRepo *repositories.AnnouncementRepository) AnnouncementService {
	return &announcementServiceImpl{
		announcementRepo: announcementRepo,
	}
}

// Create posts a new announcement
func (s *announcementServiceImpl) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	announcement := &models.Announcement{
		Title:   req.Title,
		Content: req.Content,
	}

	if _, err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, fmt.Errorf("error creating announcement: %w", err)
	}

	return announcement, nil
}

// List returns all announcements, newest first
func (s *announcementServiceImpl) List(ctx context.Context) ([]*models.Announcement, error) {
	announcements, err := s.announcementRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing announcements: %w", err)
	}
	return announcements, nil
}
