package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrek/classpoint/internal/app/models"
	"github.com/emrek/classpoint/internal/pkg/logger"
)

// RecordingRepository handles recording database operations
type RecordingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRecordingRepository creates a new RecordingRepository
func NewRecordingRepository(db *pgxpool.Pool) *RecordingRepository {
	return &RecordingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a recording row referencing the stored filename
func (r *RecordingRepository) Create(ctx context.Context, recording *models.Recording) (int64, error) {
	sql, args, err := r.sb.Insert("recordings").
		Columns("title", "description", "url").
		Values(recording.Title, recording.Description, recording.URL).
		Suffix("RETURNING id, date_uploaded").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create recording SQL")
		return 0, fmt.Errorf("failed to build create recording query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&recording.ID, &recording.DateUploaded)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create recording query")
		return 0, fmt.Errorf("error creating recording: %w", err)
	}

	return recording.ID, nil
}

// ListAll retrieves all recordings, newest first
func (r *RecordingRepository) ListAll(ctx context.Context) ([]*models.Recording, error) {
	sql, args, err := r.sb.Select("id", "title", "description", "url", "date_uploaded").
		From("recordings").
		OrderBy("date_uploaded DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list recordings SQL")
		return nil, fmt.Errorf("failed to build list recordings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list recordings query")
		return nil, fmt.Errorf("error querying recordings: %w", err)
	}
	defer rows.Close()

	recordings := []*models.Recording{}
	for rows.Next() {
		recording := &models.Recording{}
		if err := rows.Scan(&recording.ID, &recording.Title, &recording.Description, &recording.URL, &recording.DateUploaded); err != nil {
			logger.Error().Err(err).Msg("Error scanning recording row")
			return nil, fmt.Errorf("error scanning recording row: %w", err)
		}
		recordings = append(recordings, recording)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating recording rows")
		return nil, fmt.Errorf("error iterating recording rows: %w", err)
	}

	return recordings, nil
}
