package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	AnnouncementRepository *AnnouncementRepository
	RecordingRepository    *RecordingRepository
	MentorRepository       *MentorRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		RecordingRepository:    NewRecordingRepository(db),
		MentorRepository:       NewMentorRepository(db),
	}
}
