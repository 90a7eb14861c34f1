package query

import (
	"math"

	"devclub-portal/app/models"
)

const (
	DefaultTopStudents = 10
	DefaultPodiumSize  = 3
	DefaultSuggestions = 5
)

// TopStudents returns the first n students of the ranked list. The list is
// stored in rank order so no sorting happens here. n <= 0 means
// DefaultTopStudents.
func TopStudents(students []models.StudentRanking, n int) []models.StudentRanking {
	if n <= 0 {
		n = DefaultTopStudents
	}
	if n > len(students) {
		n = len(students)
	}
	out := make([]models.StudentRanking, n)
	copy(out, students[:n])
	return out
}

// SearchStudents matches name or branch. An empty query returns everyone.
func SearchStudents(students []models.StudentRanking, search string) []models.StudentRanking {
	q := needle(search)
	out := make([]models.StudentRanking, 0, len(students))
	for _, s := range students {
		if q == "" || containsFolded(s.Name, q) || containsFolded(s.Branch, q) {
			out = append(out, s)
		}
	}
	return out
}

func StudentByID(students []models.StudentRanking, id int) (models.StudentRanking, bool) {
	for _, s := range students {
		if s.ID == id {
			return s, true
		}
	}
	return models.StudentRanking{}, false
}

func StudentNames(students []models.StudentRanking) []string {
	out := make([]string, 0, len(students))
	for _, s := range students {
		out = append(out, s.Name)
	}
	return out
}

// Suggestions returns at most n leading entries of names.
func Suggestions(names []string, n int) []string {
	if n <= 0 {
		n = DefaultSuggestions
	}
	if n > len(names) {
		n = len(names)
	}
	out := make([]string, n)
	copy(out, names[:n])
	return out
}

// SummarizeStudents reports the figures above the student table. TopPoints is
// taken from the first row, which is the leader when the input is ranked.
func SummarizeStudents(students []models.StudentRanking) models.StudentStatistics {
	s := models.StudentStatistics{TotalStudents: len(students)}
	if len(students) > 0 {
		s.TopPoints = students[0].Points
	}
	for _, st := range students {
		s.TotalContests += st.Contests
		s.TotalAchievements += st.Achievements
	}
	return s
}

func SummarizeBranches(branches []models.BranchRanking) models.GroupStatistics {
	s := models.GroupStatistics{TotalGroups: len(branches)}
	for _, b := range branches {
		s.TotalMembers += b.TotalMembers
		s.TotalPoints += b.TotalPoints
	}
	s.AveragePoints = roundedMean(s.TotalPoints, s.TotalGroups)
	return s
}

func SummarizeYears(years []models.YearRanking) models.GroupStatistics {
	s := models.GroupStatistics{TotalGroups: len(years)}
	for _, y := range years {
		s.TotalMembers += y.TotalMembers
		s.TotalPoints += y.TotalPoints
	}
	s.AveragePoints = roundedMean(s.TotalPoints, s.TotalGroups)
	return s
}

// roundedMean rounds half away from zero; 0 groups yields 0.
func roundedMean(total, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(n)))
}
