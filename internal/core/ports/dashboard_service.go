package ports

import "context"

// AreaCount is one bar of the per-area chart. The id doubles as the
// navigation filter a client feeds back into the items listing.
type AreaCount struct {
	AreaID string `json:"area_id"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

type DashboardStats struct {
	Total        int         `json:"total"`
	Service      int         `json:"service"`
	Maintenance  int         `json:"maintenance"`
	OutOfService int         `json:"out_of_service"`
	ByArea       []AreaCount `json:"by_area"`
}

type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
