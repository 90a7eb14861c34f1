package models

const (
	EventUpcoming  = "upcoming"
	EventOngoing   = "ongoing"
	EventCompleted = "completed"
)

type Event struct {
	ID          int     `json:"id" bson:"id"`
	Title       string  `json:"title" bson:"title"`
	Date        string  `json:"date" bson:"date"`
	Time        string  `json:"time" bson:"time"`
	Description string  `json:"description" bson:"description"`
	Status      string  `json:"status" bson:"status"`
	Category    string  `json:"category" bson:"category"`
	Attendees   int     `json:"attendees" bson:"attendees"`
	Location    string  `json:"location" bson:"location"`
	Image       *string `json:"image" bson:"image,omitempty"`
}

// EventStatistics is the strip shown under the events listing.
type EventStatistics struct {
	Upcoming  int `json:"upcoming"`
	Attendees int `json:"attendees"`
	Completed int `json:"completed"`
}
