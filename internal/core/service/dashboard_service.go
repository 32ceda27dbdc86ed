package service

import (
	"context"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

// DashboardService computes the read-only chart aggregates: counts per
// status and per area, by linear scan over both collections.
type DashboardService struct {
	items ports.ItemRepository
	areas ports.AreaRepository
}

func NewDashboardService(items ports.ItemRepository, areas ports.AreaRepository) *DashboardService {
	return &DashboardService{items: items, areas: areas}
}

func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	areas, err := s.areas.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.DashboardStats{
		Total:  len(items),
		ByArea: make([]ports.AreaCount, 0, len(areas)),
	}
	for _, it := range items {
		switch it.Status {
		case domain.StatusService:
			stats.Service++
		case domain.StatusMaintenance:
			stats.Maintenance++
		case domain.StatusOutOfService:
			stats.OutOfService++
		}
	}

	// Items referencing a deleted area are counted in the totals but appear
	// in no bar.
	for _, area := range areas {
		count := 0
		for _, it := range items {
			if it.AreaID == area.ID {
				count++
			}
		}
		stats.ByArea = append(stats.ByArea, ports.AreaCount{
			AreaID: area.ID,
			Name:   area.Name,
			Count:  count,
		})
	}

	return stats, nil
}
