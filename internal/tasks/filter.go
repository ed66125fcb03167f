package tasks

import (
	"strings"
	"time"
)

// FilterByQuery returns tasks whose title or notes contain the query,
// case-insensitively. The Tasks API has no server-side text search, so
// filtering happens client-side. At most maxResults tasks are returned;
// maxResults <= 0 means unlimited.
func FilterByQuery(taskList []Task, query string, maxResults int) []Task {
	queryLower := strings.ToLower(query)

	var matching []Task
	for _, task := range taskList {
		title := strings.ToLower(task.Title)
		notes := strings.ToLower(task.Notes)

		if strings.Contains(title, queryLower) || strings.Contains(notes, queryLower) {
			matching = append(matching, task)
			if maxResults > 0 && len(matching) >= maxResults {
				break
			}
		}
	}

	return matching
}

// FilterByDueRange returns tasks whose due date falls within [start, end],
// compared at day granularity. Tasks without a due date are skipped. At most
// maxResults tasks are returned; maxResults <= 0 means unlimited.
func FilterByDueRange(taskList []Task, start, end time.Time, maxResults int) []Task {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	var matching []Task
	for _, task := range taskList {
		if task.Due.IsZero() {
			continue
		}

		dueDay := truncateToDay(task.Due)
		if dueDay.Before(startDay) || dueDay.After(endDay) {
			continue
		}

		matching = append(matching, task)
		if maxResults > 0 && len(matching) >= maxResults {
			break
		}
	}

	return matching
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
