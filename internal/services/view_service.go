package services

import (
	"context"
	"time"

	"github.com/smallie-ng/smallie-web/internal/config"
	"github.com/smallie-ng/smallie-web/internal/models"
	"golang.org/x/sync/errgroup"
)

// ViewService assembles page contexts
type ViewService struct {
	contestants *ContestantService
	tasks       *TaskService
	window      CompetitionWindow
	credentials func() models.Credentials
}

// NewViewService creates a new ViewService. Credentials are read from the
// environment on every build.
func NewViewService(contestants *ContestantService, tasks *TaskService, window CompetitionWindow) *ViewService {
	return &ViewService{
		contestants: contestants,
		tasks:       tasks,
		window:      window,
		credentials: config.LoadCredentials,
	}
}

// BuildHomeView assembles the homepage context for the given instant
func (s *ViewService) BuildHomeView(ctx context.Context, now time.Time) *models.HomeView {
	view := &models.HomeView{
		Credentials: s.credentials(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		view.Contestants = s.contestants.ListContestants(gctx)
		return nil
	})
	g.Go(func() error {
		view.CurrentDay, view.DailyTask = s.CurrentTask(gctx, now)
		return nil
	})
	// Neither fetch returns an error
	_ = g.Wait()

	return view
}

// CurrentTask returns the competition day for now and the task to show for it
func (s *ViewService) CurrentTask(ctx context.Context, now time.Time) (int, *models.DailyTask) {
	day := s.window.CurrentDay(now)
	switch day {
	case models.DayNotStarted:
		t := notStartedTask
		return day, &t
	case models.DayEnded:
		t := endedTask
		return day, &t
	}
	return day, s.tasks.GetTask(ctx, day)
}

// BuildAdminView assembles the admin dashboard context
func (s *ViewService) BuildAdminView() *models.AdminView {
	return &models.AdminView{Credentials: s.credentials()}
}
