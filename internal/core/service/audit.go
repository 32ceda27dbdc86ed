package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

// appendLog writes an audit entry after a successful primary write. A failed
// log write is reported and swallowed: the primary mutation stands, there is
// no compensating action.
func appendLog(ctx context.Context, logs ports.LogRepository, logger zerolog.Logger, action domain.LogAction, details string, actor ports.Actor) {
	entry := &domain.Log{
		ID:        uuid.NewString(),
		Action:    action,
		Details:   details,
		Timestamp: domain.NowTimestamp(),
		UserID:    actor.UserID,
		Username:  actor.Username,
	}
	if err := logs.Append(ctx, entry); err != nil {
		logger.Warn().Err(err).Str("action", string(action)).Msg("audit log write failed")
	}
}
