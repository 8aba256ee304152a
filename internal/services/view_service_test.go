package services

import (
	"context"
	"testing"
	"time"

	"github.com/smallie-ng/smallie-web/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testWindow() CompetitionWindow {
	return NewCompetitionWindow(
		time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 21, 0, 0, 0, 0, time.UTC),
	)
}

func TestCompetitionWindow_CurrentDay(t *testing.T) {
	w := testWindow()

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"day before start", time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC), 0},
		{"just before start", time.Date(2025, 4, 14, 23, 59, 59, 0, time.UTC), 0},
		{"start instant", time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), 1},
		{"evening of day one", time.Date(2025, 4, 15, 21, 0, 0, 0, time.UTC), 1},
		{"day three", time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC), 3},
		{"end instant", time.Date(2025, 4, 21, 0, 0, 0, 0, time.UTC), 7},
		{"after end instant", time.Date(2025, 4, 21, 0, 0, 1, 0, time.UTC), 8},
		{"day after end", time.Date(2025, 4, 22, 0, 0, 0, 0, time.UTC), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.CurrentDay(tt.now))
		})
	}
}

func newTestViewService(t *testing.T, contestantRepo *memoryContestantRepo, taskRepo *memoryTaskRepo) *ViewService {
	t.Helper()
	logger := zaptest.NewLogger(t)
	svc := NewViewService(
		NewContestantService(contestantRepo, logger),
		NewTaskService(taskRepo, logger),
		testWindow(),
	)
	svc.credentials = func() models.Credentials {
		return models.Credentials{FirebaseProjectID: "smallie-test"}
	}
	return svc
}

func TestBuildHomeView_Phases(t *testing.T) {
	svc := newTestViewService(t, &memoryContestantRepo{findErr: errStoreDown}, &memoryTaskRepo{err: errStoreDown})
	ctx := context.Background()

	before := svc.BuildHomeView(ctx, time.Date(2025, 4, 14, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, 0, before.CurrentDay)
	assert.Equal(t, "Competition starts soon", before.DailyTask.Title)

	during := svc.BuildHomeView(ctx, time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 3, during.CurrentDay)
	assert.Equal(t, FallbackTask(3).Title, during.DailyTask.Title)
	assert.Len(t, during.Contestants, 10)
	assert.Equal(t, "smallie-test", during.Credentials.FirebaseProjectID)

	after := svc.BuildHomeView(ctx, time.Date(2025, 4, 22, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 8, after.CurrentDay)
	assert.Equal(t, "Competition has ended", after.DailyTask.Title)
}

func TestBuildHomeView_UsesStoredTask(t *testing.T) {
	taskRepo := &memoryTaskRepo{tasks: map[int]*models.DailyTask{4: {Day: 4, Title: "Remixed Freestyle"}}}
	svc := newTestViewService(t, &memoryContestantRepo{}, taskRepo)

	view := svc.BuildHomeView(context.Background(), time.Date(2025, 4, 18, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, 4, view.CurrentDay)
	assert.Equal(t, "Remixed Freestyle", view.DailyTask.Title)
	assert.Equal(t, []int{4}, taskRepo.lookups)
}

func TestBuildHomeView_LongWindowClampsTaskLookup(t *testing.T) {
	svc := newTestViewService(t, &memoryContestantRepo{}, &memoryTaskRepo{})
	svc.window = NewCompetitionWindow(
		time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
	)

	view := svc.BuildHomeView(context.Background(), time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 11, view.CurrentDay)
	assert.Equal(t, "No task available", view.DailyTask.Title)
}

func TestBuildHomeView_ActiveContestants(t *testing.T) {
	svc := newTestViewService(t, &memoryContestantRepo{findErr: errStoreDown}, &memoryTaskRepo{})

	view := svc.BuildHomeView(context.Background(), time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC))
	assert.Len(t, view.ActiveContestants(), 8)
}

func TestBuildAdminView(t *testing.T) {
	svc := newTestViewService(t, &memoryContestantRepo{}, &memoryTaskRepo{})
	require.NotNil(t, svc.BuildAdminView())
	assert.Equal(t, "smallie-test", svc.BuildAdminView().Credentials.FirebaseProjectID)
}
