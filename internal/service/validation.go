package service

import (
	"regexp"
	"strings"

	"github.com/fayrashop/api/internal/apperrors"
)

// emailPattern is deliberately loose; the unique index on users.email is
// the real uniqueness guarantee, this only rejects obvious garbage.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

func validateEmail(email string) error {
	if email == "" {
		return apperrors.MissingField.WithMessage("Email is required")
	}
	if !emailPattern.MatchString(email) {
		return apperrors.InvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return apperrors.MissingField.WithMessage("Password is required")
	}
	if len(password) < minPasswordLength {
		return apperrors.InvalidInput.WithMessage("Password must be at least 8 characters long")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
