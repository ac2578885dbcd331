package models

import (
	"errors"
	"testing"

	"github.com/emrek/classpoint/internal/pkg/apperrors"
)

func TestParseRole(t *testing.T) {
	for _, role := range []string{"student", "teacher", "admin"} {
		parsed, err := ParseRole(role)
		if err != nil {
			t.Errorf("ParseRole(%q) returned error: %v", role, err)
		}
		if string(parsed) != role {
			t.Errorf("ParseRole(%q) = %q", role, parsed)
		}
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	for _, role := range []string{"", "Student", "superuser", "ADMIN", "root"} {
		if _, err := ParseRole(role); !errors.Is(err, apperrors.ErrInvalidRole) {
			t.Errorf("ParseRole(%q) = %v, want ErrInvalidRole", role, err)
		}
	}
}
