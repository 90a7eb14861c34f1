package route

import (
	"devclub-portal/app/repository"
	"devclub-portal/app/service"
	"devclub-portal/config"
	"devclub-portal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, cfg config.Config, repo repository.ClubRepository, creds repository.CredentialRepository) {
	// Services
	homeService := service.NewHomeService(repo)
	memberService := service.NewMemberService(repo)
	eventService := service.NewEventService(repo)
	leaderboardService := service.NewLeaderboardService(repo)
	authService := service.NewAuthService(repo, creds, cfg.JWTSecret, cfg.TokenTTL)

	api := app.Group("/api/v1")

	api.Get("/health", service.HealthCheck)
	api.Get("/home", homeService.GetHome)

	// Authentication
	auth := api.Group("/auth")
	auth.Post("/login", authService.Login)
	auth.Get("/profile",
		middleware.AuthRequired(cfg.JWTSecret),
		authService.Profile)

	// Members directory
	members := api.Group("/members")
	members.Get("/", memberService.GetAllMembers)
	members.Get("/filters", memberService.GetMemberFilters)
	members.Get("/:id", memberService.GetMemberByID)

	// Events
	events := api.Group("/events")
	events.Get("/", eventService.GetAllEvents)
	events.Get("/categories", eventService.GetCategories)
	events.Get("/:id", eventService.GetEventByID)

	// Leaderboard
	leaderboard := api.Group("/leaderboard")
	leaderboard.Get("/students", leaderboardService.GetStudentRankings)
	leaderboard.Get("/students/top", leaderboardService.GetPodium)
	leaderboard.Get("/students/:id", leaderboardService.GetStudentByID)
	leaderboard.Get("/branches", leaderboardService.GetBranchRankings)
	leaderboard.Get("/years", leaderboardService.GetYearRankings)
}
