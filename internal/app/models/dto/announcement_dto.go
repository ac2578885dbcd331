package dto

// CreateAnnouncementRequest represents the announcement posting form
type CreateAnnouncementRequest struct {
	Title   string `form:"title" binding:"required,max=120"`
	Content string `form:"content" binding:"required"`
}
