package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/emrek/classpoint/internal/app/models"
	"github.com/emrek/classpoint/internal/app/models/dto"
	"github.com/emrek/classpoint/internal/app/repositories"
	"github.com/emrek/classpoint/internal/pkg/apperrors"
	"github.com/emrek/classpoint/internal/pkg/filestorage"
)

// RecordingService defines the interface for recording operations
type RecordingService interface {
	Upload(ctx context.Context, req *dto.UploadRecordingRequest, file *multipart.FileHeader) (*models.Recording, error)
	List(ctx context.Context) ([]*models.Recording, error)
}

// recordingServiceImpl implements RecordingService
type recordingServiceImpl struct {
	recordingRepo *repositories.RecordingRepository
	storage       filestorage.FileStorage
}

// NewRecordingService creates a new RecordingService
func NewRecordingService(recordingRepo *repositories.RecordingRepository, storage filestorage.FileStorage) RecordingService {
	return &recordingServiceImpl{
		recordingRepo: recordingRepo,
		storage:       storage,
	}
}

// Upload validates the file, stores it and records its metadata. A missing
// file part is ErrNoFileSelected; a filename outside the allowed video
// extensions is ErrUnsupportedFileType. No row is inserted unless the file
// write succeeded.
func (s *recordingServiceImpl) Upload(ctx context.Context, req *dto.UploadRecordingRequest, file *multipart.FileHeader) (*models.Recording, error) {
	if file == nil {
		return nil, apperrors.ErrNoFileSelected
	}

	if !filestorage.AllowedVideoExtension(file.Filename) {
		return nil, apperrors.ErrUnsupportedFileType
	}

	storedName, err := s.storage.SaveUpload(file)
	if err != nil {
		return nil, fmt.Errorf("error saving upload: %w", err)
	}

	recording := &models.Recording{
		Title: req.Title,
		URL:   storedName,
	}
	if req.Description != "" {
		description := req.Description
		recording.Description = &description
	}

	if _, err := s.recordingRepo.Create(ctx, recording); err != nil {
		return nil, fmt.Errorf("error creating recording: %w", err)
	}

	return recording, nil
}

// List returns all recordings, newest first
func (s *recordingServiceImpl) List(ctx context.Context) ([]*models.Recording, error) {
	recordings, err := s.recordingRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing recordings: %w", err)
	}
	return recordings, nil
}
