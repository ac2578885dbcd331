// Package seed creates the initial records the application needs on first
// boot, currently just the default administrator account.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrek/classpoint/internal/app/models"
	"github.com/emrek/classpoint/internal/app/repositories"
	"github.com/emrek/classpoint/internal/config"
	"github.com/emrek/classpoint/internal/pkg/apperrors"
	"github.com/emrek/classpoint/internal/pkg/auth"
	"github.com/emrek/classpoint/internal/pkg/logger"
)

const adminUsername = "admin"

// SeedAdmin ensures an administrator account exists. The password comes from
// the ADMIN_PASSWORD environment variable; when it is unset and no admin
// exists yet, seeding is skipped with a warning so the app still boots.
func SeedAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	userRepo := repositories.NewUserRepository(pool)

	exists, err := userRepo.AdminExists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if exists {
		logger.Debug().Msg("Admin account already present, skipping seed")
		return nil
	}

	password := config.GetEnv("ADMIN_PASSWORD", "")
	if password == "" {
		logger.Warn().Msg("ADMIN_PASSWORD not set, skipping admin account seed")
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username: adminUsername,
		Password: hashed,
		Role:     models.RoleAdmin,
	}

	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		// Another instance may have seeded concurrently.
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return nil
		}
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info().Str("username", adminUsername).Msg("Seeded default admin account")
	return nil
}
