package firestore

import (
	"context"
	"fmt"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/smallie-ng/smallie-web/internal/models"
	"github.com/smallie-ng/smallie-web/internal/repositories"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TaskRepository implements the repositories.TaskRepository interface
type TaskRepository struct {
	collection *gcfirestore.CollectionRef
	client     *gcfirestore.Client
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(client *gcfirestore.Client) repositories.TaskRepository {
	return &TaskRepository{
		collection: client.Collection(repositories.TasksCollection),
		client:     client,
	}
}

// FindByDay reads the day_<n> document
func (r *TaskRepository) FindByDay(ctx context.Context, day int) (*models.DailyTask, error) {
	snap, err := r.collection.Doc(repositories.TaskDocumentID(day)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task for day %d: %w", day, err)
	}

	var task models.DailyTask
	if err := snap.DataTo(&task); err != nil {
		return nil, fmt.Errorf("failed to decode task for day %d: %w", day, err)
	}
	return &task, nil
}

// Count counts the task documents
func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	refs, err := r.collection.DocumentRefs(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return int64(len(refs)), nil
}

// SeedMany writes tasks in one bulk writer session
func (r *TaskRepository) SeedMany(ctx context.Context, tasks []*models.DailyTask) error {
	if len(tasks) == 0 {
		return nil
	}

	bw := r.client.BulkWriter(ctx)
	jobs := make([]*gcfirestore.BulkWriterJob, 0, len(tasks))
	for _, t := range tasks {
		job, err := bw.Set(r.collection.Doc(repositories.TaskDocumentID(t.Day)), t)
		if err != nil {
			bw.End()
			return fmt.Errorf("failed to queue task for day %d: %w", t.Day, err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for i, job := range jobs {
		if _, err := job.Results(); err != nil {
			return fmt.Errorf("failed to seed task for day %d: %w", tasks[i].Day, err)
		}
	}
	return nil
}
