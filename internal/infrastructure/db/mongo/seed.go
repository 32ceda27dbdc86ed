package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

const defaultAreaCount = 6

// Seed performs the idempotent one-time initialization: the bootstrap admin
// and the default areas, each created only when absent. There is no lock:
// two instances can both pass the empty check, but the fixed ids make the
// second write a harmless overwrite rather than a duplicate.
func Seed(ctx context.Context, users ports.UserRepository, areas ports.AreaRepository, logger zerolog.Logger) error {
	if _, err := users.FindByUsername(ctx, domain.SuperAdminUsername); err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("seed: lookup bootstrap admin: %w", err)
		}

		admin := &domain.User{
			ID:        "super-admin-001",
			Username:  domain.SuperAdminUsername,
			Email:     "admin@nexus.com",
			Password:  "Superadmin-123",
			FullName:  "General Administrator",
			Role:      domain.RoleAdmin,
			CreatedAt: domain.NowTimestamp(),
		}
		if err := users.Upsert(ctx, admin); err != nil {
			return fmt.Errorf("seed: create bootstrap admin: %w", err)
		}
		logger.Info().Msg("bootstrap admin created")
	}

	n, err := areas.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count areas: %w", err)
	}
	if n == 0 {
		for i := 1; i <= defaultAreaCount; i++ {
			area := &domain.Area{
				ID:          fmt.Sprintf("area-%d", i),
				Name:        fmt.Sprintf("Area %d", i),
				Description: "Designated operations space.",
				Image:       fmt.Sprintf("https://picsum.photos/seed/area%d/400/300", i-1),
			}
			if err := areas.Upsert(ctx, area); err != nil {
				return fmt.Errorf("seed: create default area: %w", err)
			}
		}
		logger.Info().Int("count", defaultAreaCount).Msg("default areas created")
	}

	return nil
}
