package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

func TestAreaService_Create(t *testing.T) {
	areas := &stubAreaRepo{}
	logs := &stubLogRepo{}
	svc := NewAreaService(areas, logs, zerolog.Nop())

	area, err := svc.Create(context.Background(), ports.SaveAreaInput{
		Name:        "Receiving",
		Description: "Inbound goods staging.",
	}, adminActor)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if area.ID == "" {
		t.Fatalf("expected generated id")
	}
	if area.Image != defaultAreaImage {
		t.Fatalf("expected default image, got %q", area.Image)
	}
	if logs.lastDetails() != "New area created: Receiving" {
		t.Fatalf("unexpected audit details %q", logs.lastDetails())
	}
}

func TestAreaService_Create_Validation(t *testing.T) {
	svc := NewAreaService(&stubAreaRepo{}, &stubLogRepo{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.SaveAreaInput{Name: "x"}, adminActor); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.SaveAreaInput{
		Name: "x", Description: "y",
	}, userActor); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for USER role, got %v", err)
	}
}

func TestAreaService_Update(t *testing.T) {
	areas := &stubAreaRepo{areas: []domain.Area{
		{ID: "area-1", Name: "Old Name", Description: "Old.", Image: "img"},
	}}
	logs := &stubLogRepo{}
	svc := NewAreaService(areas, logs, zerolog.Nop())

	area, err := svc.Update(context.Background(), ports.SaveAreaInput{
		ID: "area-1", Name: "New Name", Description: "New.", Image: "img",
	}, adminActor)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if area.Name != "New Name" || areas.areas[0].Name != "New Name" {
		t.Fatalf("area not updated")
	}
	if logs.lastAction() != domain.ActionUpdate {
		t.Fatalf("expected UPDATE audit entry, got %q", logs.lastAction())
	}

	if _, err := svc.Update(context.Background(), ports.SaveAreaInput{Name: "x"}, adminActor); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing id, got %v", err)
	}
}

func TestAreaService_Delete_LeavesItemsDangling(t *testing.T) {
	areas := &stubAreaRepo{areas: []domain.Area{{ID: "area-1", Name: "Receiving"}}}
	items := &stubItemRepo{items: []domain.Item{
		{ID: "i1", Name: "Forklift", AreaID: "area-1", Status: domain.StatusService},
	}}
	logs := &stubLogRepo{}
	svc := NewAreaService(areas, logs, zerolog.Nop())

	if err := svc.Delete(context.Background(), "area-1", adminActor); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(areas.areas) != 0 {
		t.Fatalf("expected area to be removed")
	}
	// The referencing item is untouched; its area_id dangles.
	if items.items[0].AreaID != "area-1" {
		t.Fatalf("item should keep its area_id")
	}
	if logs.lastDetails() != "Deleted area ID: area-1" {
		t.Fatalf("unexpected audit details %q", logs.lastDetails())
	}

	if err := svc.Delete(context.Background(), "area-1", userActor); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for USER role, got %v", err)
	}
}
