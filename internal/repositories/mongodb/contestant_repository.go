package mongodb

import (
	"context"
	"fmt"

	"github.com/smallie-ng/smallie-web/internal/models"
	"github.com/smallie-ng/smallie-web/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContestantRepository implements the repositories.ContestantRepository interface
type ContestantRepository struct {
	collection *mongo.Collection
}

// NewContestantRepository creates a new ContestantRepository
func NewContestantRepository(db *mongo.Database) repositories.ContestantRepository {
	return &ContestantRepository{
		collection: db.Collection(repositories.ContestantsCollection),
	}
}

// FindAll finds all contestants ordered by ID
func (r *ContestantRepository) FindAll(ctx context.Context) ([]*models.Contestant, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query contestants: %w", err)
	}
	defer cursor.Close(ctx)

	var contestants []*models.Contestant
	if err := cursor.All(ctx, &contestants); err != nil {
		return nil, fmt.Errorf("failed to decode contestants: %w", err)
	}
	if contestants == nil {
		contestants = []*models.Contestant{}
	}
	repositories.SortContestants(contestants)
	return contestants, nil
}

// SeedMany upserts contestants by ID in a single bulk write
func (r *ContestantRepository) SeedMany(ctx context.Context, contestants []*models.Contestant) error {
	if len(contestants) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(contestants))
	for _, c := range contestants {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": c.ID}).
			SetReplacement(c).
			SetUpsert(true))
	}

	if _, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("failed to seed contestants: %w", err)
	}
	return nil
}
