package repositories

import "strconv"

// TaskDocumentID returns the document key a day's task is stored under
func TaskDocumentID(day int) string {
	return "day_" + strconv.Itoa(day)
}
