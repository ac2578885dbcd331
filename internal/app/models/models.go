package models

import (
	"github.com/emrek/classpoint/internal/pkg/apperrors"
)

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// ParseRole converts a raw form value into a Role. Anything outside the
// closed set is rejected.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return Role(s), nil
	default:
		return "", apperrors.ErrInvalidRole
	}
}
