package models

type StudentRanking struct {
	ID           int    `json:"id" bson:"id"`
	Rank         int    `json:"rank" bson:"rank"`
	Name         string `json:"name" bson:"name"`
	Branch       string `json:"branch" bson:"branch"`
	Year         int    `json:"year" bson:"year"`
	Points       int    `json:"points" bson:"points"`
	Achievements int    `json:"achievements" bson:"achievements"`
	Contests     int    `json:"contests" bson:"contests"`
	Level        string `json:"level" bson:"level"`
}

type BranchRanking struct {
	ID            int    `json:"id" bson:"id"`
	Rank          int    `json:"rank" bson:"rank"`
	Branch        string `json:"branch" bson:"branch"`
	TotalMembers  int    `json:"totalMembers" bson:"total_members"`
	TotalPoints   int    `json:"totalPoints" bson:"total_points"`
	AveragePoints int    `json:"averagePoints" bson:"average_points"`
	Achievements  int    `json:"achievements" bson:"achievements"`
	Contests      int    `json:"contests" bson:"contests"`
	Level         string `json:"level" bson:"level"`
}

type YearRanking struct {
	ID            int    `json:"id" bson:"id"`
	Rank          int    `json:"rank" bson:"rank"`
	Year          int    `json:"year" bson:"year"`
	TotalMembers  int    `json:"totalMembers" bson:"total_members"`
	TotalPoints   int    `json:"totalPoints" bson:"total_points"`
	AveragePoints int    `json:"averagePoints" bson:"average_points"`
	Achievements  int    `json:"achievements" bson:"achievements"`
	Contests      int    `json:"contests" bson:"contests"`
	Level         string `json:"level" bson:"level"`
}

// StudentStatistics summarises the student tab of the leaderboard.
type StudentStatistics struct {
	TotalStudents     int `json:"totalStudents"`
	TopPoints         int `json:"topPoints"`
	TotalContests     int `json:"totalContests"`
	TotalAchievements int `json:"totalAchievements"`
}

// GroupStatistics summarises the branch and year tabs.
type GroupStatistics struct {
	TotalGroups   int `json:"totalGroups"`
	TotalMembers  int `json:"totalMembers"`
	TotalPoints   int `json:"totalPoints"`
	AveragePoints int `json:"averagePoints"`
}
