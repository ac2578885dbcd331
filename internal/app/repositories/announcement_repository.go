package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrek/classpoint/internal/app/models"
	"github.com/emrek/classpoint/internal/pkg/logger"
)

// AnnouncementRepository handles announcement database operations
type AnnouncementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an announcement row. date_posted defaults to now() in the
// database.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) (int64, error) {
	sql, args, err := r.sb.Insert("announcements").
		Columns("title", "content").
		Values(announcement.Title, announcement.Content).
		Suffix("RETURNING id, date_posted").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create announcement SQL")
		return 0, fmt.Errorf("failed to build create announcement query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&announcement.ID, &announcement.DatePosted)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create announcement query")
		return 0, fmt.Errorf("error creating announcement: %w", err)
	}

	return announcement.ID, nil
}

// ListAll retrieves all announcements, newest first
func (r *AnnouncementRepository) ListAll(ctx context.Context) ([]*models.Announcement, error) {
	sql, args, err := r.sb.Select("id", "title", "content", "date_posted").
		From("announcements").
		OrderBy("date_posted DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list announcements SQL")
		return nil, fmt.Errorf("failed to build list announcements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list announcements query")
		return nil, fmt.Errorf("error querying announcements: %w", err)
	}
	defer rows.Close()

	announcements := []*models.Announcement{}
	for rows.Next() {
		announcement := &models.Announcement{}
		if err := rows.Scan(&announcement.ID, &announcement.Title, &announcement.Content, &announcement.DatePosted); err != nil {
			logger.Error().Err(err).Msg("Error scanning announcement row")
			return nil, fmt.Errorf("error scanning announcement row: %w", err)
		}
		announcements = append(announcements, announcement)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating announcement rows")
		return nil, fmt.Errorf("error iterating announcement rows: %w", err)
	}

	return announcements, nil
}
