package ports

import "context"

// ExportService renders the currently filtered item list as a download.
// Both formats resolve area names in memory; an item whose area no longer
// exists shows "N/A".
type ExportService interface {
	CSV(ctx context.Context, filter ItemFilter) ([]byte, error)
	PDF(ctx context.Context, filter ItemFilter) ([]byte, error)
}
