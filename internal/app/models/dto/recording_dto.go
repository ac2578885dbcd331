package dto

// UploadRecordingRequest represents the recording upload form fields.
// The video file itself is read from the multipart body separately.
type UploadRecordingRequest struct {
	Title       string `form:"title" binding:"required,max=120"`
	Description string `form:"description" binding:"max=2000"`
}
