package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

// ItemService implements the inventory listing and admin-gated CRUD. Listing
// is fetch-everything-then-filter: all narrowing happens in memory, with no
// pagination and no query pushdown.
type ItemService struct {
	items  ports.ItemRepository
	logs   ports.LogRepository
	logger zerolog.Logger
}

func NewItemService(items ports.ItemRepository, logs ports.LogRepository, logger zerolog.Logger) *ItemService {
	return &ItemService{items: items, logs: logs, logger: logger}
}

// List fetches the whole collection and applies the three filters by
// sequential narrowing, preserving the fetched order.
func (s *ItemService) List(ctx context.Context, filter ports.ItemFilter) ([]domain.Item, error) {
	all, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterItems(all, filter), nil
}

func filterItems(items []domain.Item, filter ports.ItemFilter) []domain.Item {
	result := items

	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		narrowed := make([]domain.Item, 0, len(result))
		for _, it := range result {
			if strings.Contains(strings.ToLower(it.Name), term) ||
				strings.Contains(strings.ToLower(it.Code), term) ||
				strings.Contains(strings.ToLower(it.Category), term) {
				narrowed = append(narrowed, it)
			}
		}
		result = narrowed
	}

	if filter.Status != "" {
		narrowed := make([]domain.Item, 0, len(result))
		for _, it := range result {
			if it.Status == filter.Status {
				narrowed = append(narrowed, it)
			}
		}
		result = narrowed
	}

	if filter.AreaID != "" {
		narrowed := make([]domain.Item, 0, len(result))
		for _, it := range result {
			if it.AreaID == filter.AreaID {
				narrowed = append(narrowed, it)
			}
		}
		result = narrowed
	}

	return result
}

// Save creates or fully overwrites an item. Create when input.ID is empty;
// otherwise the existing record's created_at is preserved and updated_at
// refreshed. The audit entry is written after the primary write and never
// rolls it back.
func (s *ItemService) Save(ctx context.Context, input ports.SaveItemInput, actor ports.Actor) (*domain.Item, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if input.Name == "" || input.Category == "" || input.AreaID == "" {
		return nil, fmt.Errorf("%w: name, category and area_id are required", domain.ErrValidation)
	}
	status := input.Status
	if status == "" {
		status = domain.StatusService
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, input.Status)
	}

	now := domain.NowTimestamp()
	item := &domain.Item{
		ID:          input.ID,
		Code:        input.Code,
		Name:        input.Name,
		Category:    input.Category,
		Status:      status,
		Description: input.Description,
		AreaID:      input.AreaID,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	action := domain.ActionCreate
	details := fmt.Sprintf("Created item: %s", item.Name)

	if input.ID == "" {
		item.ID = uuid.NewString()
		if item.Code == "" {
			item.Code = generateItemCode()
		}
	} else {
		existing, err := s.findByID(ctx, input.ID)
		if err != nil {
			return nil, err
		}
		item.CreatedAt = existing.CreatedAt
		action = domain.ActionUpdate
		details = fmt.Sprintf("Updated item: %s", item.Name)
	}

	if err := s.items.Upsert(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("item_id", item.ID).Msg("failed to save item")
		return nil, err
	}

	appendLog(ctx, s.logs, s.logger, action, details, actor)
	s.logger.Info().Str("item_id", item.ID).Str("code", item.Code).Msg("item saved")
	return item, nil
}

// Delete removes an item immediately. No confirmation, no undo, no check
// that the id exists; the audit entry records the raw id.
func (s *ItemService) Delete(ctx context.Context, id string, actor ports.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}

	appendLog(ctx, s.logs, s.logger, domain.ActionDelete, fmt.Sprintf("Deleted item ID: %s", id), actor)
	s.logger.Info().Str("item_id", id).Msg("item deleted")
	return nil
}

func (s *ItemService) findByID(ctx context.Context, id string) (*domain.Item, error) {
	all, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, domain.ErrItemNotFound
}

// generateItemCode derives a code from the current time:
// INV-<last six digits of unix millis>. Not collision-proof, like the rest
// of the uniqueness handling.
func generateItemCode() string {
	ms := fmt.Sprintf("%d", time.Now().UnixMilli())
	return "INV-" + ms[len(ms)-6:]
}
