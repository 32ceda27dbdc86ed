package service

import (
	"context"
	"strings"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

// LogService serves the audit viewer: at most the 100 most recent entries,
// newest first, with text and action filters applied in memory afterwards.
type LogService struct {
	logs ports.LogRepository
}

func NewLogService(logs ports.LogRepository) *LogService {
	return &LogService{logs: logs}
}

func (s *LogService) Recent(ctx context.Context, filter ports.LogFilter) ([]domain.Log, error) {
	recent, err := s.logs.FindRecent(ctx, domain.RecentLogLimit)
	if err != nil {
		return nil, err
	}

	result := recent
	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		narrowed := make([]domain.Log, 0, len(result))
		for _, l := range result {
			if strings.Contains(strings.ToLower(l.Username), term) ||
				strings.Contains(strings.ToLower(l.Details), term) {
				narrowed = append(narrowed, l)
			}
		}
		result = narrowed
	}

	if filter.Action != "" {
		narrowed := make([]domain.Log, 0, len(result))
		for _, l := range result {
			if l.Action == filter.Action {
				narrowed = append(narrowed, l)
			}
		}
		result = narrowed
	}

	return result, nil
}
