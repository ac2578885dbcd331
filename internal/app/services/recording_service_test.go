package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/emrek/classpoint/internal/app/models/dto"
	"github.com/emrek/classpoint/internal/pkg/apperrors"
)

// failingStorage rejects every write.
type failingStorage struct{}

func (failingStorage) SaveUpload(*multipart.FileHeader) (string, error) {
	return "", errors.New("disk full")
}

func (failingStorage) FullPath(string) string { return "" }

// recordingStorage counts writes.
type recordingStorage struct {
	saved []string
}

func (s *recordingStorage) SaveUpload(fh *multipart.FileHeader) (string, error) {
	s.saved = append(s.saved, fh.Filename)
	return fh.Filename, nil
}

func (s *recordingStorage) FullPath(name string) string { return name }

func fileHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("video", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte("content")); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/recordings", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, header, err := req.FormFile("video")
	if err != nil {
		t.Fatalf("FormFile: %v", err)
	}
	return header
}

func TestUploadRejectsMissingFile(t *testing.T) {
	svc := NewRecordingService(nil, &recordingStorage{})

	_, err := svc.Upload(context.Background(), &dto.UploadRecordingRequest{Title: "x"}, nil)
	if !errors.Is(err, apperrors.ErrNoFileSelected) {
		t.Errorf("err = %v, want ErrNoFileSelected", err)
	}
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	storage := &recordingStorage{}
	svc := NewRecordingService(nil, storage)

	_, err := svc.Upload(context.Background(), &dto.UploadRecordingRequest{Title: "Notes"}, fileHeader(t, "notes.txt"))
	if !errors.Is(err, apperrors.ErrUnsupportedFileType) {
		t.Errorf("err = %v, want ErrUnsupportedFileType", err)
	}
	if len(storage.saved) != 0 {
		t.Errorf("saved = %d, want 0; a rejected file must never touch storage", len(storage.saved))
	}
}

func TestUploadStorageFailure(t *testing.T) {
	svc := NewRecordingService(nil, failingStorage{})

	_, err := svc.Upload(context.Background(), &dto.UploadRecordingRequest{Title: "Lecture"}, fileHeader(t, "lecture1.mp4"))
	if err == nil {
		t.Error("expected an error when storage fails")
	}
}
