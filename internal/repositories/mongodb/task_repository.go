package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/smallie-ng/smallie-web/internal/models"
	"github.com/smallie-ng/smallie-web/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TaskRepository implements the repositories.TaskRepository interface
type TaskRepository struct {
	collection *mongo.Collection
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *mongo.Database) repositories.TaskRepository {
	return &TaskRepository{
		collection: db.Collection(repositories.TasksCollection),
	}
}

// FindByDay finds the task for a competition day
func (r *TaskRepository) FindByDay(ctx context.Context, day int) (*models.DailyTask, error) {
	var task models.DailyTask
	err := r.collection.FindOne(ctx, bson.M{"_id": repositories.TaskDocumentID(day)}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task for day %d: %w", day, err)
	}
	return &task, nil
}

// Count counts all stored tasks
func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// SeedMany upserts tasks keyed by their day document ID
func (r *TaskRepository) SeedMany(ctx context.Context, tasks []*models.DailyTask) error {
	if len(tasks) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(tasks))
	for _, t := range tasks {
		id := repositories.TaskDocumentID(t.Day)
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": t}).
			SetUpsert(true))
	}

	if _, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("failed to seed tasks: %w", err)
	}
	return nil
}
