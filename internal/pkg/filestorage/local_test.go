package filestorage

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// buildFileHeader assembles a multipart.FileHeader the way a real upload
// request would deliver it.
func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("video", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/recordings", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if _, header, err := req.FormFile("video"); err != nil {
		t.Fatalf("FormFile: %v", err)
	} else {
		return header
	}
	return nil
}

func TestSaveUpload(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	content := []byte("fake video bytes")
	header := buildFileHeader(t, "lecture1.mp4", content)

	storedName, err := storage.SaveUpload(header)
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}
	if storedName != "lecture1.mp4" {
		t.Errorf("stored name = %q, want %q", storedName, "lecture1.mp4")
	}

	saved, err := os.ReadFile(storage.FullPath(storedName))
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !bytes.Equal(saved, content) {
		t.Error("saved content does not match upload")
	}
}

func TestSaveUploadSanitizesName(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	header := buildFileHeader(t, "intro lecture (week 1).mp4", []byte("x"))

	storedName, err := storage.SaveUpload(header)
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}
	if storedName != "intro_lecture_week_1.mp4" {
		t.Errorf("stored name = %q, want %q", storedName, "intro_lecture_week_1.mp4")
	}

	if _, err := os.Stat(filepath.Join(base, storedName)); err != nil {
		t.Errorf("expected file inside storage root: %v", err)
	}
}

func TestSaveUploadOverwrites(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if _, err := storage.SaveUpload(buildFileHeader(t, "lecture1.mp4", []byte("first"))); err != nil {
		t.Fatalf("first SaveUpload: %v", err)
	}
	if _, err := storage.SaveUpload(buildFileHeader(t, "lecture1.mp4", []byte("second"))); err != nil {
		t.Fatalf("second SaveUpload: %v", err)
	}

	file, err := os.Open(storage.FullPath("lecture1.mp4"))
	if err != nil {
		t.Fatalf("opening saved file: %v", err)
	}
	defer file.Close()

	saved, err := io.ReadAll(file)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(saved) != "second" {
		t.Errorf("saved content = %q, want %q", saved, "second")
	}
}

func TestSaveUploadNilHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if _, err := storage.SaveUpload(nil); err == nil {
		t.Error("expected an error for a nil file header")
	}
}

func TestFullPathStripsDirectories(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	got := storage.FullPath("../secret.mp4")
	want := filepath.Join(base, "secret.mp4")
	if got != want {
		t.Errorf("FullPath = %q, want %q", got, want)
	}
}
