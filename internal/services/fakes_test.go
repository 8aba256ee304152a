package services

import (
	"context"
	"errors"
	"sync"

	"github.com/smallie-ng/smallie-web/internal/models"
	"github.com/smallie-ng/smallie-web/internal/repositories"
)

var errStoreDown = errors.New("document store unreachable")

// memoryContestantRepo is an in-memory ContestantRepository
type memoryContestantRepo struct {
	mu          sync.Mutex
	contestants []*models.Contestant
	findErr     error
	seedErr     error
	seedCalls   int
}

func (r *memoryContestantRepo) FindAll(ctx context.Context) ([]*models.Contestant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	return append([]*models.Contestant(nil), r.contestants...), nil
}

func (r *memoryContestantRepo) SeedMany(ctx context.Context, contestants []*models.Contestant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seedCalls++
	if r.seedErr != nil {
		return r.seedErr
	}
	r.contestants = append(r.contestants, contestants...)
	return nil
}

// memoryTaskRepo is an in-memory TaskRepository
type memoryTaskRepo struct {
	mu        sync.Mutex
	tasks     map[int]*models.DailyTask
	err       error
	seedCalls int
	lookups   []int
}

func (r *memoryTaskRepo) FindByDay(ctx context.Context, day int) (*models.DailyTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups = append(r.lookups, day)
	if r.err != nil {
		return nil, r.err
	}
	task, ok := r.tasks[day]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return task, nil
}

func (r *memoryTaskRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.tasks)), nil
}

func (r *memoryTaskRepo) SeedMany(ctx context.Context, tasks []*models.DailyTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seedCalls++
	if r.err != nil {
		return r.err
	}
	if r.tasks == nil {
		r.tasks = map[int]*models.DailyTask{}
	}
	for _, t := range tasks {
		r.tasks[t.Day] = t
	}
	return nil
}
