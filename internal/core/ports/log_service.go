package ports

import (
	"context"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
)

// LogFilter narrows the (already capped) recent-log window in memory.
type LogFilter struct {
	Search string
	Action domain.LogAction
}

type LogService interface {
	Recent(ctx context.Context, filter LogFilter) ([]domain.Log, error)
}
