package service

import (
	"strings"

	"devclub-portal/app/models"
	"devclub-portal/app/query"
	"devclub-portal/app/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type LeaderboardService struct {
	repo repository.ClubRepository
}

func NewLeaderboardService(repo repository.ClubRepository) *LeaderboardService {
	return &LeaderboardService{repo: repo}
}

// GetStudentRankings returns search results when ?search is set and the top
// ?limit students otherwise.
func (s *LeaderboardService) GetStudentRankings(c *fiber.Ctx) error {
	students, err := s.repo.StudentRankings(c.UserContext())
	if err != nil {
		log.Errorf("load student rankings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load student rankings"})
	}

	search := strings.TrimSpace(c.Query("search"))
	var data []models.StudentRanking
	if search != "" {
		data = query.SearchStudents(students, search)
	} else {
		data = query.TopStudents(students, c.QueryInt("limit", query.DefaultTopStudents))
	}

	return c.JSON(models.StudentListResponse{
		Data:        data,
		Count:       len(data),
		Query:       search,
		Statistics:  query.SummarizeStudents(data),
		Suggestions: query.Suggestions(query.StudentNames(students), query.DefaultSuggestions),
	})
}

// GetPodium returns the leading students, three by default.
func (s *LeaderboardService) GetPodium(c *fiber.Ctx) error {
	students, err := s.repo.StudentRankings(c.UserContext())
	if err != nil {
		log.Errorf("load student rankings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load student rankings"})
	}

	top := query.TopStudents(students, c.QueryInt("limit", query.DefaultPodiumSize))
	return c.JSON(fiber.Map{"data": top})
}

func (s *LeaderboardService) GetStudentByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	students, err := s.repo.StudentRankings(c.UserContext())
	if err != nil {
		log.Errorf("load student rankings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load student rankings"})
	}

	student, ok := query.StudentByID(students, id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.JSON(student)
}

func (s *LeaderboardService) GetBranchRankings(c *fiber.Ctx) error {
	branches, err := s.repo.BranchRankings(c.UserContext())
	if err != nil {
		log.Errorf("load branch rankings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load branch rankings"})
	}

	return c.JSON(models.BranchListResponse{
		Data:       branches,
		Statistics: query.SummarizeBranches(branches),
	})
}

func (s *LeaderboardService) GetYearRankings(c *fiber.Ctx) error {
	years, err := s.repo.YearRankings(c.UserContext())
	if err != nil {
		log.Errorf("load year rankings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load year rankings"})
	}

	return c.JSON(models.YearListResponse{
		Data:       years,
		Statistics: query.SummarizeYears(years),
	})
}
