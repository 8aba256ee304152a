package services

import (
	"time"

	"github.com/smallie-ng/smallie-web/internal/models"
)

// CompetitionWindow is the fixed date range the competition runs in
type CompetitionWindow struct {
	Start time.Time
	End   time.Time
}

// NewCompetitionWindow creates a new CompetitionWindow
func NewCompetitionWindow(start, end time.Time) CompetitionWindow {
	return CompetitionWindow{Start: start, End: end}
}

// CurrentDay maps now onto the competition calendar:
// 0 before Start, 8 after End, otherwise whole days since Start plus one.
func (w CompetitionWindow) CurrentDay(now time.Time) int {
	switch {
	case now.Before(w.Start):
		return models.DayNotStarted
	case now.After(w.End):
		return models.DayEnded
	}
	return int(now.Sub(w.Start)/(24*time.Hour)) + 1
}
