package ports

import (
	"context"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

type LoginResult struct {
	Token string
	User  *domain.User
}

type RequestResetResult struct {
	// Code is surfaced directly to the caller for on-screen display; there
	// is no out-of-band delivery channel.
	Code      string
	ExpiresIn int // seconds
}

type ConfirmResetInput struct {
	Email       string
	Code        string
	NewPassword string
}

type RecoveredCredentials struct {
	Username string
	Password string
	// RevealFor is how long (seconds) a client should display the
	// credentials before hiding them again.
	RevealFor int
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	RequestPasswordReset(ctx context.Context, email string) (*RequestResetResult, error)
	ConfirmPasswordReset(ctx context.Context, input ConfirmResetInput) error
	RecoverAdminCredentials(ctx context.Context, answer string) (*RecoveredCredentials, error)
}
