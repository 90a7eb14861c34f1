package service

import (
	"devclub-portal/app/models"
	"devclub-portal/app/query"
	"devclub-portal/app/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type EventService struct {
	repo repository.ClubRepository
}

func NewEventService(repo repository.ClubRepository) *EventService {
	return &EventService{repo: repo}
}

// GetAllEvents lists events filtered by search, category and status. The
// statistics cover every filtered event, not just the returned page.
func (s *EventService) GetAllEvents(c *fiber.Ctx) error {
	var q models.EventQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameters"})
	}

	events, err := s.repo.Events(c.UserContext())
	if err != nil {
		log.Errorf("load events: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load events"})
	}

	filtered := query.FilterEvents(events, query.EventCriteria{
		Search:   q.Search,
		Category: q.Category,
		Status:   q.Status,
	})

	start, end, meta := query.Page(len(filtered), q.Pagination())
	return c.JSON(models.EventListResponse{
		Data:       filtered[start:end],
		Meta:       meta,
		Statistics: query.SummarizeEvents(filtered),
	})
}

// GetCategories returns "All" followed by the distinct categories.
func (s *EventService) GetCategories(c *fiber.Ctx) error {
	events, err := s.repo.Events(c.UserContext())
	if err != nil {
		log.Errorf("load events: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load events"})
	}

	categories := append([]string{query.AllCategories}, query.Categories(events)...)
	return c.JSON(fiber.Map{
		"categories":  categories,
		"suggestions": query.Suggestions(query.EventTitles(events), query.DefaultSuggestions),
	})
}

func (s *EventService) GetEventByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event ID"})
	}

	events, err := s.repo.Events(c.UserContext())
	if err != nil {
		log.Errorf("load events: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load events"})
	}

	event, ok := query.EventByID(events, id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}
	return c.JSON(event)
}
