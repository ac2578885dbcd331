package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrek/classpoint/internal/app/models"
	"github.com/emrek/classpoint/internal/pkg/logger"
)

// MentorRepository handles mentor database operations
type MentorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMentorRepository creates a new MentorRepository
func NewMentorRepository(db *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a mentor request row
func (r *MentorRepository) Create(ctx context.Context, mentor *models.Mentor) (int64, error) {
	sql, args, err := r.sb.Insert("mentors").
		Columns("name", "specialization", "email", "phone").
		Values(mentor.Name, mentor.Specialization, mentor.Email, mentor.Phone).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create mentor SQL")
		return 0, fmt.Errorf("failed to build create mentor query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&mentor.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create mentor query")
		return 0, fmt.Errorf("error creating mentor: %w", err)
	}

	return mentor.ID, nil
}

// ListAll retrieves all mentors in storage order
func (r *MentorRepository) ListAll(ctx context.Context) ([]*models.Mentor, error) {
	sql, args, err := r.sb.Select("id", "name", "specialization", "email", "phone").
		From("mentors").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list mentors SQL")
		return nil, fmt.Errorf("failed to build list mentors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list mentors query")
		return nil, fmt.Errorf("error querying mentors: %w", err)
	}
	defer rows.Close()

	mentors := []*models.Mentor{}
	for rows.Next() {
		mentor := &models.Mentor{}
		if err := rows.Scan(&mentor.ID, &mentor.Name, &mentor.Specialization, &mentor.Email, &mentor.Phone); err != nil {
			logger.Error().Err(err).Msg("Error scanning mentor row")
			return nil, fmt.Errorf("error scanning mentor row: %w", err)
		}
		mentors = append(mentors, mentor)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating mentor rows")
		return nil, fmt.Errorf("error iterating mentor rows: %w", err)
	}

	return mentors, nil
}
