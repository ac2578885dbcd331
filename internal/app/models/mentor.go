package models

// Mentor defines the mentor model based on the 'mentors' table.
// Rows are created by student requests; there is no approval workflow.
type Mentor struct {
	ID             int64   `json:"id" db:"id"`
	Name           string  `json:"name" db:"name"`
	Specialization *string `json:"specialization,omitempty" db:"specialization"`
	Email          string  `json:"email" db:"email"`
	Phone          *string `json:"phone,omitempty" db:"phone"`
}
