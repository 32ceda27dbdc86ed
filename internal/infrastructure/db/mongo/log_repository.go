package mongo

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
)

const collectionLogs = "logs"

type LogRepository struct {
	col *mongo.Collection
}

func NewLogRepository(db *mongo.Database) *LogRepository {
	return &LogRepository{col: db.Collection(collectionLogs)}
}

// Append inserts an audit record. Logs are never updated or deleted through
// the API.
func (r *LogRepository) Append(ctx context.Context, log *domain.Log) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, log); err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	return nil
}

// FindRecent returns at most limit records ordered by timestamp descending.
// When the store cannot serve the ordered query (e.g. a missing index), it
// falls back to fetching everything and sorting client-side. Timestamps are
// RFC3339 strings, so string order is chronological order.
func (r *LogRepository) FindRecent(ctx context.Context, limit int) ([]domain.Log, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return r.findRecentFallback(ctx, limit)
	}
	defer cur.Close(ctx)

	var logs []domain.Log
	if err := cur.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("decode logs: %w", err)
	}
	return logs, nil
}

func (r *LogRepository) findRecentFallback(ctx context.Context, limit int) ([]domain.Log, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find logs: %w", err)
	}
	defer cur.Close(ctx)

	var logs []domain.Log
	if err := cur.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("decode logs: %w", err)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Timestamp > logs[j].Timestamp
	})
	if len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}
