package query

import "devclub-portal/app/models"

const (
	// AllCategories and AllStatuses are the "no filter" values the client
	// sends from its category and status pickers.
	AllCategories = "All"
	AllStatuses   = "all"
)

type EventCriteria struct {
	Search   string
	Category string
	Status   string
}

// FilterEvents returns the events matching every supplied criterion in their
// original order. Search matches title, description or category.
func FilterEvents(events []models.Event, c EventCriteria) []models.Event {
	q := needle(c.Search)
	anyCategory := c.Category == "" || c.Category == AllCategories
	anyStatus := c.Status == "" || c.Status == AllStatuses

	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !anyCategory && e.Category != c.Category {
			continue
		}
		if !anyStatus && e.Status != c.Status {
			continue
		}
		if q != "" && !eventMatches(e, q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func eventMatches(e models.Event, q string) bool {
	return containsFolded(e.Title, q) ||
		containsFolded(e.Description, q) ||
		containsFolded(e.Category, q)
}

func EventByID(events []models.Event, id int) (models.Event, bool) {
	for _, e := range events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

// Categories returns the distinct event categories in lexicographic order.
func Categories(events []models.Event) []string {
	return uniqueStrings(events, func(e models.Event) string { return e.Category })
}

func EventTitles(events []models.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Title)
	}
	return out
}

// SummarizeEvents counts upcoming and completed events and sums attendees.
func SummarizeEvents(events []models.Event) models.EventStatistics {
	var s models.EventStatistics
	for _, e := range events {
		switch e.Status {
		case models.EventUpcoming:
			s.Upcoming++
		case models.EventCompleted:
			s.Completed++
		}
		s.Attendees += e.Attendees
	}
	return s
}
