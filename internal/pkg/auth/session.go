package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/emrek/classpoint/internal/app/models"
	"github.com/emrek/classpoint/internal/pkg/apperrors"
)

// SessionConfig defines session token settings
type SessionConfig struct {
	SecretKey    string
	TTL          time.Duration
	Issuer       string
	CookieName   string
	SecureCookie bool
}

// SessionService issues and verifies signed session tokens. The token is a
// client-side session: the browser holds it in an HttpOnly cookie and the
// server keeps no session state.
type SessionService struct {
	config SessionConfig
}

// NewSessionService creates a new SessionService
func NewSessionService(config SessionConfig) *SessionService {
	return &SessionService{
		config: config,
	}
}

// Session is the authenticated identity carried by a valid session token.
// It is immutable and threaded through the request context, never read
// from global state.
type Session struct {
	UserID   int64
	Username string
	Role     models.Role
}

// sessionClaims defines session token content
type sessionClaims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// CookieName returns the configured session cookie name
func (s *SessionService) CookieName() string {
	return s.config.CookieName
}

// CookieMaxAge returns the session cookie lifetime in seconds
func (s *SessionService) CookieMaxAge() int {
	return int(s.config.TTL.Seconds())
}

// SecureCookie reports whether the session cookie should be marked Secure
func (s *SessionService) SecureCookie() bool {
	return s.config.SecureCookie
}

// Issue creates a signed session token for the given user
func (s *SessionService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Verify validates a session token and returns the identity it carries
func (s *SessionService) Verify(tokenString string) (*Session, error) {
	if tokenString == "" {
		return nil, apperrors.ErrSessionInvalid
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrSessionInvalid
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrSessionInvalid
	}

	role, err := models.ParseRole(claims.Role)
	if err != nil {
		return nil, apperrors.ErrSessionInvalid
	}
	if claims.UserID <= 0 || claims.Username == "" {
		return nil, apperrors.ErrSessionInvalid
	}

	return &Session{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     role,
	}, nil
}
