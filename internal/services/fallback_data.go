package services

import "github.com/smallie-ng/smallie-web/internal/models"

// fallbackContestants is served whenever the document store is unavailable or empty
var fallbackContestants = []models.Contestant{
	{ID: "1", Name: "Adebola Johnson", Age: 25, Location: "Lagos", Bio: "Content creator and aspiring actor with a passion for storytelling.", Votes: 245, ImageURL: "https://images.unsplash.com/photo-1522327646852-4e28586a40dd", StreamURL: "https://www.youtube.com/watch?v=example1"},
	{ID: "2", Name: "Chioma Okafor", Age: 23, Location: "Abuja", Bio: "Fashion designer and lifestyle vlogger sharing Nigerian culture.", Votes: 312, ImageURL: "https://images.unsplash.com/photo-1659540517934-cba43fc64ded", StreamURL: "https://www.youtube.com/watch?v=example2"},
	{ID: "3", Name: "Emeka Nwosu", Age: 28, Location: "Port Harcourt", Bio: "Music producer who loves to create fusion of afrobeats and jazz.", Votes: 189, ImageURL: "https://images.unsplash.com/photo-1589707181684-24a34853641d"},
	{ID: "4", Name: "Folake Ade", Age: 24, Location: "Ibadan", Bio: "Dancer and choreographer with unique Afro-contemporary moves.", Votes: 278, ImageURL: "https://images.unsplash.com/photo-1659540517163-e9a29f4d1251", StreamURL: "https://www.youtube.com/watch?v=example4"},
	{ID: "5", Name: "Tunde Bakare", Age: 26, Location: "Kano", Bio: "Tech enthusiast and gaming streamer building a Nigerian gaming community.", Votes: 201, ImageURL: "https://images.unsplash.com/photo-1495434942214-9b525bba74e9", StreamURL: "https://www.twitch.tv/example5"},
	{ID: "6", Name: "Ngozi Eze", Age: 22, Location: "Enugu", Bio: "Makeup artist and beauty influencer creating unique Nigerian looks.", Votes: 267, ImageURL: "https://images.unsplash.com/photo-1523365280197-f1783db9fe62"},
	{ID: "7", Name: "Ibrahim Yusuf", Age: 27, Location: "Kaduna", Bio: "Stand-up comedian bringing laughter and social commentary.", Votes: 234, ImageURL: "https://images.unsplash.com/photo-1528820184586-dd0d858b7254", StreamURL: "https://www.youtube.com/watch?v=example7"},
	{ID: "8", Name: "Amara Obi", Age: 25, Location: "Owerri", Bio: "Culinary enthusiast showcasing modern Nigerian cuisine.", Votes: 156, ImageURL: "https://images.unsplash.com/photo-1632215861513-130b66fe97f4", Eliminated: true},
	{ID: "9", Name: "Dayo Adeleke", Age: 29, Location: "Abeokuta", Bio: "Fitness trainer promoting healthy living with African exercises.", Votes: 198, ImageURL: "https://images.unsplash.com/photo-1543234723-b70b104d8e25", StreamURL: "https://www.youtube.com/watch?v=example9", Eliminated: true},
	{ID: "10", Name: "Fatima Bello", Age: 24, Location: "Sokoto", Bio: "Traditional storyteller bringing Nigerian folklore to modern audiences.", Votes: 222, ImageURL: "https://images.unsplash.com/photo-1539414785349-55cfff23f5b9", StreamURL: "https://www.youtube.com/watch?v=example10"},
}

const (
	defaultReleaseTime     = "09:00 WAT"
	defaultVotingCloseTime = "21:00 WAT"
)

// fallbackTasks holds one task per competition day, indexed by day-1
var fallbackTasks = [models.LastCompetitionDay]models.DailyTask{
	{Day: 1, Date: "2025-04-15", Title: "Naija Throwback Dance Challenge", Description: "60-second dance to a classic hit (e.g., P-Square)"},
	{Day: 2, Date: "2025-04-16", Title: "Jollof Wars: Cook-Off Edition", Description: "Cook jollof with ₦500 in 10 minutes, taste it"},
	{Day: 3, Date: "2025-04-17", Title: "Nollywood Skit Showdown", Description: "2-minute Nollywood skit (e.g., Cheating Husband)"},
	{Day: 4, Date: "2025-04-18", Title: "Afrobeat Freestyle Face-Off", Description: "1-minute freestyle on a trending beat (e.g., Burna Boy)"},
	{Day: 5, Date: "2025-04-19", Title: "Owambe Fashion Flex", Description: "Style an owambe outfit from home, 90-second catwalk"},
	{Day: 6, Date: "2025-04-20", Title: "Pidgin Proverbs Remix", Description: "60-second pidgin skit/song from a proverb (e.g., Monkey no fine...)"},
	{Day: 7, Date: "2025-04-21", Title: "Lagos Hustle Pitch", Description: "3-minute pitch as Smallie winner"},
}

// Placeholder tasks for days without a scheduled challenge
var (
	notStartedTask  = models.DailyTask{Day: models.DayNotStarted, Title: "Competition starts soon", Description: "Stay tuned for Day 1!"}
	endedTask       = models.DailyTask{Day: models.DayEnded, Title: "Competition has ended", Description: "Thanks for participating!"}
	unavailableTask = models.DailyTask{Title: "No task available", Description: "Check back later"}
)

// FallbackContestants returns a fresh copy of the built-in contestant table
func FallbackContestants() []*models.Contestant {
	out := make([]*models.Contestant, len(fallbackContestants))
	for i := range fallbackContestants {
		c := fallbackContestants[i]
		out[i] = &c
	}
	return out
}

// FallbackTask returns a copy of the built-in task for day. Days outside the
// schedule resolve to the "No task available" placeholder.
func FallbackTask(day int) *models.DailyTask {
	if !models.IsScheduledDay(day) {
		t := unavailableTask
		t.Day = day
		return &t
	}
	t := fallbackTasks[day-1]
	t.ReleaseTime = defaultReleaseTime
	t.VotingCloseTime = defaultVotingCloseTime
	return &t
}

// FallbackTasks returns copies of all built-in tasks in day order
func FallbackTasks() []*models.DailyTask {
	out := make([]*models.DailyTask, 0, models.LastCompetitionDay)
	for day := models.FirstCompetitionDay; day <= models.LastCompetitionDay; day++ {
		out = append(out, FallbackTask(day))
	}
	return out
}
