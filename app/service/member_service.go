package service

import (
	"devclub-portal/app/models"
	"devclub-portal/app/query"
	"devclub-portal/app/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type MemberService struct {
	repo repository.ClubRepository
}

func NewMemberService(repo repository.ClubRepository) *MemberService {
	return &MemberService{repo: repo}
}

// GetAllMembers lists the directory filtered by search, role, branch and year.
func (s *MemberService) GetAllMembers(c *fiber.Ctx) error {
	var q models.MemberQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameters"})
	}

	members, err := s.repo.Members(c.UserContext())
	if err != nil {
		log.Errorf("load members: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load members"})
	}

	filtered := query.FilterMembers(members, query.MemberCriteria{
		Search: q.Search,
		Role:   q.Role,
		Branch: q.Branch,
		Year:   query.ParseYear(q.Year),
	})

	start, end, meta := query.Page(len(filtered), q.Pagination())
	return c.JSON(models.PaginatedResponse{
		Data: filtered[start:end],
		Meta: meta,
	})
}

// GetMemberFilters returns the picker values for the directory.
func (s *MemberService) GetMemberFilters(c *fiber.Ctx) error {
	members, err := s.repo.Members(c.UserContext())
	if err != nil {
		log.Errorf("load members: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load members"})
	}

	return c.JSON(models.MemberFilters{
		Roles:       query.Roles(members),
		Branches:    query.Branches(members),
		Years:       query.Years(members),
		Suggestions: query.Suggestions(query.MemberNames(members), query.DefaultSuggestions),
	})
}

func (s *MemberService) GetMemberByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid member ID"})
	}

	members, err := s.repo.Members(c.UserContext())
	if err != nil {
		log.Errorf("load members: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load members"})
	}

	member, ok := query.MemberByID(members, id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Member not found"})
	}
	return c.JSON(member)
}
