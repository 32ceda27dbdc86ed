package service

import (
	"fmt"
	"regexp"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
)

const (
	minPasswordLength         = 12
	minUsernameLength         = 9
	minAdminCreatedUsernameLn = 4
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validatePassword enforces the four-class complexity rule: at least 12
// characters including a lowercase letter, an uppercase letter, a digit and a
// symbol.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if !lower || !upper || !digit || !symbol {
		return fmt.Errorf("%w: password must include uppercase, lowercase, digits and special characters", domain.ErrValidation)
	}
	return nil
}

// signToken issues the session token for a user. Expiry is explicit; the
// claims are injected into request context by the auth middleware and never
// revalidated against the users collection.
func signToken(user *domain.User, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
