package ports

import (
	"context"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
)

// AreaRepository persists area records. Deleting an area never touches the
// items that reference it.
type AreaRepository interface {
	FindAll(ctx context.Context) ([]domain.Area, error)
	Upsert(ctx context.Context, area *domain.Area) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
