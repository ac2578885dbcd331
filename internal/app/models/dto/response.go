package dto

// Notice is a transient user-visible message included in a rendered page
type Notice struct {
	Level   string `json:"level" example:"success"`
	Message string `json:"message" example:"Announcement added successfully!"`
}

// PageResponse is the JSON document a dashboard or landing page renders
type PageResponse struct {
	Page   string      `json:"page" example:"teacher_dashboard"`
	Data   interface{} `json:"data,omitempty"`
	Notice *Notice     `json:"notice,omitempty"`
}

// ListResponse is the JSON document a list view renders
type ListResponse struct {
	Page   string      `json:"page" example:"announcements"`
	Items  interface{} `json:"items"`
	Notice *Notice     `json:"notice,omitempty"`
}
