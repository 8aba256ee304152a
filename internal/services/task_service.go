package services

import (
	"context"
	"errors"

	"github.com/smallie-ng/smallie-web/internal/models"
	"github.com/smallie-ng/smallie-web/internal/repositories"
	"go.uber.org/zap"
)

// TaskService supplies daily tasks, preferring the document store and falling
// back to the built-in schedule
type TaskService struct {
	taskRepo repositories.TaskRepository
	logger   *zap.Logger
}

// NewTaskService creates a new TaskService. A nil repository runs the service
// on fallback data only.
func NewTaskService(taskRepo repositories.TaskRepository, logger *zap.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger.Named("tasks"),
	}
}

// GetTask returns the task for day and never fails. Days outside 1..7 never
// reach the store and resolve to a placeholder.
func (s *TaskService) GetTask(ctx context.Context, day int) *models.DailyTask {
	if !models.IsScheduledDay(day) || s.taskRepo == nil {
		return FallbackTask(day)
	}

	task, err := s.taskRepo.FindByDay(ctx, day)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return FallbackTask(day)
	case err != nil:
		s.logger.Error("Error fetching task from document store", zap.Int("day", day), zap.Error(err))
		return FallbackTask(day)
	case task == nil:
		return FallbackTask(day)
	}
	return task
}

// SeedTasks writes the built-in schedule when the store holds no tasks.
// Failures are logged and otherwise ignored.
func (s *TaskService) SeedTasks(ctx context.Context) {
	if s.taskRepo == nil {
		return
	}

	count, err := s.taskRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Error initializing daily tasks", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	s.logger.Info("Initializing daily tasks in document store")
	if err := s.taskRepo.SeedMany(ctx, FallbackTasks()); err != nil {
		s.logger.Error("Error initializing daily tasks", zap.Error(err))
		return
	}
	s.logger.Info("Daily tasks initialized in document store")
}
