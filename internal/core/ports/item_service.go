package ports

import (
	"context"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
)

// ItemFilter is the closed set of listing filters. Empty fields mean "no
// filter"; Status and AreaID are exact matches, Search is a case-insensitive
// substring over name, code and category.
type ItemFilter struct {
	Search string
	Status domain.ItemStatus
	AreaID string
}

type SaveItemInput struct {
	ID          string // empty on create
	Code        string // auto-generated on create when empty
	Name        string
	Category    string
	Status      domain.ItemStatus
	Description string
	AreaID      string
	Image       string
}

// Actor identifies the authenticated user performing a mutation, for the
// audit trail.
type Actor struct {
	UserID   string
	Username string
	Role     domain.Role
}

type ItemService interface {
	List(ctx context.Context, filter ItemFilter) ([]domain.Item, error)
	Save(ctx context.Context, input SaveItemInput, actor Actor) (*domain.Item, error)
	Delete(ctx context.Context, id string, actor Actor) error
}
