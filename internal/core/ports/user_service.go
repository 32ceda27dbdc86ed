package ports

import (
	"context"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
)

type CreateUserInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     domain.Role
}

type UpdateUserInput struct {
	ID       string
	Username string
	Email    string
	FullName string
	Role     domain.Role
	// Password is optional: blank keeps the stored one, non-blank must pass
	// the complexity rule.
	Password string
}

type UpdateUserResult struct {
	User *domain.User
	// Token is a freshly signed session token, set only when the actor
	// updated their own record (the claims may have changed).
	Token string
}

type UserService interface {
	List(ctx context.Context, actor Actor) ([]domain.User, error)
	Create(ctx context.Context, input CreateUserInput, actor Actor) (*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput, actor Actor) (*UpdateUserResult, error)
	Delete(ctx context.Context, id string, actor Actor) error
}
