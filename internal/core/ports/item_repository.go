package ports

import (
	"context"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
)

// ItemRepository persists inventory items. Listings always fetch the whole
// collection; filtering happens in memory in the service layer.
type ItemRepository interface {
	FindAll(ctx context.Context) ([]domain.Item, error)
	Upsert(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id string) error
}
