package service

import (
	"errors"
	"strings"
	"time"

	"devclub-portal/app/models"
	"devclub-portal/app/query"
	"devclub-portal/app/repository"
	"devclub-portal/middleware"
	"devclub-portal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type AuthService struct {
	repo        repository.ClubRepository
	credentials repository.CredentialRepository
	secret      string
	ttl         time.Duration
}

func NewAuthService(repo repository.ClubRepository, credentials repository.CredentialRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{repo: repo, credentials: credentials, secret: secret, ttl: ttl}
}

// Login exchanges an email and password for a signed access token.
func (s *AuthService) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password are required"})
	}

	ctx := c.UserContext()
	cred, err := s.credentials.GetByEmail(ctx, req.Email)
	if isNotFound(err) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}
	if err != nil {
		log.Errorf("load credential: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify credentials"})
	}
	if err := utils.VerifyPassword(cred, req.Password); err != nil {
		if !errors.Is(err, utils.ErrPasswordMismatch) {
			log.Errorf("%v", err)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	members, err := s.repo.Members(ctx)
	if err != nil {
		log.Errorf("load members: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load members"})
	}
	member, ok := query.MemberByID(members, cred.MemberID)
	if !ok {
		log.Warnf("credential for %s points at missing member %d", cred.Email, cred.MemberID)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	token, expiresAt, err := utils.GenerateToken(member, s.secret, s.ttl)
	if err != nil {
		log.Errorf("sign token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		Member:    member,
	})
}

// Profile returns the member behind the bearer token.
func (s *AuthService) Profile(c *fiber.Ctx) error {
	memberID, ok := c.Locals(middleware.LocalMemberID).(int)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	members, err := s.repo.Members(c.UserContext())
	if err != nil {
		log.Errorf("load members: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load members"})
	}

	member, found := query.MemberByID(members, memberID)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Member not found"})
	}
	return c.JSON(member)
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
