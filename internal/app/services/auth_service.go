package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emrek/classpoint/internal/app/models"
	"github.com/emrek/classpoint/internal/app/models/dto"
	"github.com/emrek/classpoint/internal/app/repositories"
	"github.com/emrek/classpoint/internal/pkg/apperrors"
	"github.com/emrek/classpoint/internal/pkg/auth"
)

// AuthService defines the interface for signup and login operations
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repositories.UserRepository, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Signup creates a new user with the submitted role. The role must parse
// into the closed enum; the username uniqueness guarantee comes from the
// database constraint, surfaced as ErrUsernameTaken.
func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*models.User, error) {
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: hashedPassword,
		Role:     role,
	}

	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User signed up")
	return user, nil
}

// Login checks credentials. A missing user and a wrong password both
// collapse into ErrInvalidCredentials so the response never reveals which
// field was wrong.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User logged in")
	return user, nil
}
