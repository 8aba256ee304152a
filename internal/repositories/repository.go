package repositories

import (
	"context"
	"errors"

	"github.com/smallie-ng/smallie-web/internal/models"
)

// ErrNotFound is returned when a requested document does not exist
var ErrNotFound = errors.New("document not found")

// Collection names shared by every document store implementation
const (
	ContestantsCollection = "contestants"
	TasksCollection       = "tasks"
)

// ContestantRepository defines the interface for contestant data operations
type ContestantRepository interface {
	FindAll(ctx context.Context) ([]*models.Contestant, error)
	// SeedMany writes contestants keyed by their ID, replacing existing documents
	SeedMany(ctx context.Context, contestants []*models.Contestant) error
}

// TaskRepository defines the interface for daily task data operations
type TaskRepository interface {
	FindByDay(ctx context.Context, day int) (*models.DailyTask, error)
	Count(ctx context.Context) (int64, error)
	// SeedMany writes tasks keyed by TaskDocumentID, replacing existing documents
	SeedMany(ctx context.Context, tasks []*models.DailyTask) error
}
