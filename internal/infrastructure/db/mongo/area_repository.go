package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
)

const collectionAreas = "areas"

type AreaRepository struct {
	col *mongo.Collection
}

func NewAreaRepository(db *mongo.Database) *AreaRepository {
	return &AreaRepository{col: db.Collection(collectionAreas)}
}

func (r *AreaRepository) FindAll(ctx context.Context) ([]domain.Area, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find areas: %w", err)
	}
	defer cur.Close(ctx)

	var areas []domain.Area
	if err := cur.All(ctx, &areas); err != nil {
		return nil, fmt.Errorf("decode areas: %w", err)
	}
	return areas, nil
}

func (r *AreaRepository) Upsert(ctx context.Context, area *domain.Area) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": area.ID}, area, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert area: %w", err)
	}
	return nil
}

// Delete removes the area document only. Items referencing it are left
// untouched with a dangling area_id.
func (r *AreaRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete area: %w", err)
	}
	return nil
}

func (r *AreaRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count areas: %w", err)
	}
	return n, nil
}
