package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emrek/classpoint/internal/app/controllers"
	appMigrations "github.com/emrek/classpoint/internal/app/migrations"
	appRepos "github.com/emrek/classpoint/internal/app/repositories"
	appRoutes "github.com/emrek/classpoint/internal/app/routes"
	appServices "github.com/emrek/classpoint/internal/app/services"
	"github.com/emrek/classpoint/internal/config"
	"github.com/emrek/classpoint/internal/db"
	appMiddleware "github.com/emrek/classpoint/internal/middleware"
	pkgAuth "github.com/emrek/classpoint/internal/pkg/auth"
	"github.com/emrek/classpoint/internal/pkg/filestorage"
	"github.com/emrek/classpoint/internal/pkg/flash"
	"github.com/emrek/classpoint/internal/pkg/logger"
	"github.com/emrek/classpoint/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	AnnouncementService    appServices.AnnouncementService
	RecordingService       appServices.RecordingService
	MentorService          appServices.MentorService
	AuthController         *appControllers.AuthController
	DashboardController    *appControllers.DashboardController
	AnnouncementController *appControllers.AnnouncementController
	RecordingController    *appControllers.RecordingController
	MentorController       *appControllers.MentorController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	SessionService         *pkgAuth.SessionService
	Logger                 zerolog.Logger
	FileStorage            *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.SeedAdmin(context.Background(), dbPool); err != nil {
		// Log the error but don't fail the startup.
		lgr.Error().Err(err).Msg("Failed to seed admin account, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	// Notice cookies carry the same Secure flag as the session cookie.
	flash.Configure(cfg.Session.Secure)

	deps.SessionService = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey:    cfg.Session.Secret,
		TTL:          cfg.SessionTTL(),
		Issuer:       cfg.Session.Issuer,
		CookieName:   cfg.Session.CookieName,
		SecureCookie: cfg.Session.Secure,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, lgr)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.AnnouncementRepository)
	deps.RecordingService = appServices.NewRecordingService(deps.Repos.RecordingRepository, deps.FileStorage)
	deps.MentorService = appServices.NewMentorService(deps.Repos.MentorRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.SessionService, deps.Logger)
	deps.DashboardController = appControllers.NewDashboardController()
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService)
	deps.RecordingController = appControllers.NewRecordingController(deps.RecordingService)
	deps.MentorController = appControllers.NewMentorController(deps.MentorService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Serve uploaded recordings directly from disk.
	router.Static("/uploads", deps.FileStorage.BasePath())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.DashboardController,
		deps.AnnouncementController,
		deps.RecordingController,
		deps.MentorController,
		deps.AuthMiddleware,
	)

	return router
}
