package ports

import (
	"context"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
)

// LogRepository appends and reads audit records. FindRecent returns at most
// limit entries ordered by timestamp descending; implementations must fall
// back to fetching everything and sorting client-side when the store cannot
// serve the ordered query (e.g. a missing index).
type LogRepository interface {
	Append(ctx context.Context, log *domain.Log) error
	FindRecent(ctx context.Context, limit int) ([]domain.Log, error)
}
