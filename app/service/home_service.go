package service

import (
	"devclub-portal/app/models"
	"devclub-portal/app/query"
	"devclub-portal/app/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type HomeService struct {
	repo repository.ClubRepository
}

func NewHomeService(repo repository.ClubRepository) *HomeService {
	return &HomeService{repo: repo}
}

func (s *HomeService) GetHome(c *fiber.Ctx) error {
	ctx := c.UserContext()

	highlights, err := s.repo.Highlights(ctx)
	if err != nil {
		log.Errorf("load highlights: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load home page"})
	}
	features, err := s.repo.Features(ctx)
	if err != nil {
		log.Errorf("load features: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load home page"})
	}
	students, err := s.repo.StudentRankings(ctx)
	if err != nil {
		log.Errorf("load student rankings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load home page"})
	}

	return c.JSON(models.HomePage{
		Highlights:  highlights,
		Features:    features,
		TopStudents: query.TopStudents(students, query.DefaultPodiumSize),
	})
}

func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}
