package service

import (
	"context"
	"testing"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
)

func TestDashboardService_Stats(t *testing.T) {
	items := &stubItemRepo{items: []domain.Item{
		{ID: "i1", Status: domain.StatusService, AreaID: "area-1"},
		{ID: "i2", Status: domain.StatusService, AreaID: "area-2"},
		{ID: "i3", Status: domain.StatusMaintenance, AreaID: "area-1"},
		{ID: "i4", Status: domain.StatusOutOfService, AreaID: "area-gone"},
	}}
	areas := &stubAreaRepo{areas: []domain.Area{
		{ID: "area-1", Name: "Receiving"},
		{ID: "area-2", Name: "Storage"},
		{ID: "area-3", Name: "Shipping"},
	}}
	svc := NewDashboardService(items, areas)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}

	if stats.Total != 4 {
		t.Fatalf("expected total 4, got %d", stats.Total)
	}
	if stats.Service != 2 || stats.Maintenance != 1 || stats.OutOfService != 1 {
		t.Fatalf("unexpected status counts: %+v", stats)
	}

	// One bar per existing area, in area order; the dangling item appears in
	// the totals but in no bar.
	if len(stats.ByArea) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(stats.ByArea))
	}
	want := map[string]int{"area-1": 2, "area-2": 1, "area-3": 0}
	barSum := 0
	for _, bar := range stats.ByArea {
		if bar.Count != want[bar.AreaID] {
			t.Fatalf("area %s: expected %d, got %d", bar.AreaID, want[bar.AreaID], bar.Count)
		}
		barSum += bar.Count
	}
	if barSum != 3 {
		t.Fatalf("expected bars to sum to 3, got %d", barSum)
	}
}

func TestDashboardService_Stats_Empty(t *testing.T) {
	svc := NewDashboardService(&stubItemRepo{}, &stubAreaRepo{})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Total != 0 || len(stats.ByArea) != 0 {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
}
