package models

const (
	// FirstCompetitionDay is the first day that has a scheduled task
	FirstCompetitionDay = 1
	// LastCompetitionDay is the last day that has a scheduled task
	LastCompetitionDay = 7
	// DayNotStarted is reported before the competition window opens
	DayNotStarted = 0
	// DayEnded is reported after the competition window closes
	DayEnded = 8
)

// DailyTask represents the challenge released for a single competition day
type DailyTask struct {
	Day             int    `json:"day" bson:"day" firestore:"day"`
	Date            string `json:"date,omitempty" bson:"date,omitempty" firestore:"date,omitempty"`
	Title           string `json:"title" bson:"title" firestore:"title"`
	Description     string `json:"description" bson:"description" firestore:"description"`
	ReleaseTime     string `json:"releaseTime,omitempty" bson:"release_time,omitempty" firestore:"release_time,omitempty"`
	VotingCloseTime string `json:"votingCloseTime,omitempty" bson:"voting_close_time,omitempty" firestore:"voting_close_time,omitempty"`
}

// IsScheduledDay reports whether day indexes a real task
func IsScheduledDay(day int) bool {
	return day >= FirstCompetitionDay && day <= LastCompetitionDay
}
