package dto

// RequestMentorRequest represents the mentor request form
type RequestMentorRequest struct {
	Name           string `form:"name" binding:"required,max=120"`
	Specialization string `form:"specialization" binding:"max=120"`
	Email          string `form:"email" binding:"required,email,max=120"`
	Phone          string `form:"phone" binding:"max=20"`
}
