package apperrors

import (
	"errors"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("Please fill in all required fields correctly.")

	if !errors.Is(err, ErrValidationFailed) {
		t.Error("expected the error to unwrap to ErrValidationFailed")
	}
	if err.Error() != "Please fill in all required fields correctly." {
		t.Errorf("Error() = %q, want the message", err.Error())
	}
}

func TestCustomErrorFallsBackToWrapped(t *testing.T) {
	err := NewCustomError(ErrUsernameTaken, "")

	if err.Error() != ErrUsernameTaken.Error() {
		t.Errorf("Error() = %q, want the wrapped error text", err.Error())
	}
	if !errors.Is(err, ErrUsernameTaken) {
		t.Error("expected the error to unwrap to ErrUsernameTaken")
	}
}
