package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

const defaultAreaImage = "https://picsum.photos/400/300"

// AreaService implements area CRUD. Deleting an area never reassigns or
// blocks on items referencing it; their area_id simply dangles.
type AreaService struct {
	areas  ports.AreaRepository
	logs   ports.LogRepository
	logger zerolog.Logger
}

func NewAreaService(areas ports.AreaRepository, logs ports.LogRepository, logger zerolog.Logger) *AreaService {
	return &AreaService{areas: areas, logs: logs, logger: logger}
}

func (s *AreaService) List(ctx context.Context) ([]domain.Area, error) {
	return s.areas.FindAll(ctx)
}

func (s *AreaService) Create(ctx context.Context, input ports.SaveAreaInput, actor ports.Actor) (*domain.Area, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if input.Name == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: name and description are required", domain.ErrValidation)
	}

	area := &domain.Area{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
	}
	if area.Image == "" {
		area.Image = defaultAreaImage
	}

	if err := s.areas.Upsert(ctx, area); err != nil {
		return nil, err
	}

	appendLog(ctx, s.logs, s.logger, domain.ActionCreate, fmt.Sprintf("New area created: %s", area.Name), actor)
	s.logger.Info().Str("area_id", area.ID).Msg("area created")
	return area, nil
}

func (s *AreaService) Update(ctx context.Context, input ports.SaveAreaInput, actor ports.Actor) (*domain.Area, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if input.ID == "" || input.Name == "" {
		return nil, fmt.Errorf("%w: id and name are required", domain.ErrValidation)
	}

	area := &domain.Area{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := s.areas.Upsert(ctx, area); err != nil {
		return nil, err
	}

	appendLog(ctx, s.logs, s.logger, domain.ActionUpdate, fmt.Sprintf("Area updated: %s", area.Name), actor)
	s.logger.Info().Str("area_id", area.ID).Msg("area updated")
	return area, nil
}

func (s *AreaService) Delete(ctx context.Context, id string, actor ports.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if err := s.areas.Delete(ctx, id); err != nil {
		return err
	}

	appendLog(ctx, s.logs, s.logger, domain.ActionDelete, fmt.Sprintf("Deleted area ID: %s", id), actor)
	s.logger.Info().Str("area_id", id).Msg("area deleted")
	return nil
}
