package ports

import (
	"context"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
)

type SaveAreaInput struct {
	ID          string // empty on create
	Name        string
	Description string
	Image       string
}

type AreaService interface {
	List(ctx context.Context) ([]domain.Area, error)
	Create(ctx context.Context, input SaveAreaInput, actor Actor) (*domain.Area, error)
	Update(ctx context.Context, input SaveAreaInput, actor Actor) (*domain.Area, error)
	Delete(ctx context.Context, id string, actor Actor) error
}
