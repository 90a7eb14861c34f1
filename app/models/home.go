package models

type EventHighlight struct {
	ID          int    `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Icon        string `json:"icon" bson:"icon"`
	Date        string `json:"date" bson:"date"`
	Attendees   string `json:"attendees" bson:"attendees"`
	Status      string `json:"status" bson:"status"`
}

type AchievementHighlight struct {
	ID          int    `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Icon        string `json:"icon" bson:"icon"`
	Year        string `json:"year" bson:"year"`
	Category    string `json:"category" bson:"category"`
}

type Feature struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Icon        string `json:"icon" bson:"icon"`
}

type Highlights struct {
	Events       []EventHighlight       `json:"events" bson:"events"`
	Achievements []AchievementHighlight `json:"achievements" bson:"achievements"`
}

// HomePage is everything the landing page renders in one response.
type HomePage struct {
	Highlights  Highlights       `json:"highlights"`
	Features    []Feature        `json:"features"`
	TopStudents []StudentRanking `json:"topStudents"`
}
