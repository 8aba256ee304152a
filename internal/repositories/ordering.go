package repositories

import (
	"sort"

	"github.com/smallie-ng/smallie-web/internal/models"
)

// SortContestants orders contestants by ID so every store returns the same order
func SortContestants(contestants []*models.Contestant) {
	sort.SliceStable(contestants, func(i, j int) bool {
		return LessID(contestants[i].ID, contestants[j].ID)
	})
}

// LessID orders numeric IDs numerically and everything else lexically
func LessID(a, b string) bool {
	if len(a) != len(b) && isDigits(a) && isDigits(b) {
		return len(a) < len(b)
	}
	return a < b
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
