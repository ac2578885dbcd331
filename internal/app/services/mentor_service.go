package services

import (
	"context"
	"fmt"

	"github.com/emrek/classpoint/internal/app/models"
	"github.com/emrek/classpoint/internal/app/models/dto"
	"github.com/emrek/classpoint/internal/app/repositories"
)

// MentorService defines the interface for mentor request operations
type MentorService interface {
	Request(ctx context.Context, req *dto.RequestMentorRequest) (*models.Mentor, error)
	List(ctx context.Context) ([]*models.Mentor, error)
}

// mentorServiceImpl implements MentorService
type mentorServiceImpl struct {
	mentorRepo *repositories.MentorRepository
}

// NewMentorService creates a new MentorService
func NewMentorService(mentorRepo *repositories.MentorRepository) MentorService {
	return &mentorServiceImpl{
		mentorRepo: mentorRepo,
	}
}

// Request records a mentor request. There is no approval workflow.
func (s *mentorServiceImpl) Request(ctx context.Context, req *dto.RequestMentorRequest) (*models.Mentor, error) {
	mentor := &models.Mentor{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Specialization != "" {
		specialization := req.Specialization
		mentor.Specialization = &specialization
	}
	if req.Phone != "" {
		phone := req.Phone
		mentor.Phone = &phone
	}

	if _, err := s.mentorRepo.Create(ctx, mentor); err != nil {
		return nil, fmt.Errorf("error creating mentor request: %w", err)
	}

	return mentor, nil
}

// List returns all mentors in storage order
func (s *mentorServiceImpl) List(ctx context.Context) ([]*models.Mentor, error) {
	mentors, err := s.mentorRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing mentors: %w", err)
	}
	return mentors, nil
}
