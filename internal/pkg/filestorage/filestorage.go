package filestorage

import (
	"mime/multipart"
	"regexp"
	"strings"
)

// FileStorage defines the interface for upload storage operations
type FileStorage interface {
	// SaveUpload writes an uploaded file and returns the stored filename
	SaveUpload(fileHeader *multipart.FileHeader) (string, error)

	// FullPath returns the filesystem path for a stored filename
	FullPath(storedName string) string
}

// allowedVideoExtensions is the closed set of accepted recording formats,
// matched on the substring after the last dot.
var allowedVideoExtensions = map[string]bool{
	"mp4": true,
	"mov": true,
	"avi": true,
	"mkv": true,
}

// AllowedVideoExtension reports whether a filename carries an accepted
// video extension. The check is case-insensitive.
func AllowedVideoExtension(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return false
	}
	return allowedVideoExtensions[strings.ToLower(filename[idx+1:])]
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename strips path separators, parent references and unsafe
// characters from a client-supplied filename. Separators become underscores
// so "../../etc/passwd.mp4" stores as "etc_passwd.mp4".
func SanitizeFilename(name string) string {
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	if name == "" {
		return "upload"
	}
	return name
}
