package routes

import (
	"github.com/gofiber/fiber/v2"

	"strays-backend/internal/api/handlers"
	"strays-backend/internal/middleware"
	"strays-backend/pkg/jwt"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	DonationHandler handlers.DonationHandler
	ReportHandler   handlers.ReportHandler
	EventHandler    handlers.EventHandler
	FeedbackHandler handlers.FeedbackHandler
	StatsHandler    handlers.StatsHandler
	ChatHandler     handlers.ChatHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Donations()
	c.Reports()
	c.Events()
	c.Feedback()
	c.Stats()
	c.Chat()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Get("/leaderboard", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Leaderboard)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))
	{
		donations.Post("", c.DonationHandler.CreateDonation)
		donations.Get("", c.DonationHandler.GetDonations)
		donations.Get("/map", c.DonationHandler.GetDonationMap)
	}
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/v1/reports", c.Middleware.AuthMiddleware(c.JWTService))
	{
		reports.Post("", c.ReportHandler.CreateReport)
		reports.Get("", c.ReportHandler.GetReports)
		reports.Get("/map", c.ReportHandler.GetReportMap)
		reports.Get("/:id", c.ReportHandler.GetReportByID)
	}
}

func (c *Config) Events() {
	events := c.App.Group("/api/v1/events", c.Middleware.AuthMiddleware(c.JWTService))
	{
		events.Post("", c.Middleware.AdminOnly(), c.EventHandler.CreateEvent)
		events.Get("", c.EventHandler.GetEvents)
		events.Post("/:id/signup", c.EventHandler.SignupEvent)
	}
}

func (c *Config) Feedback() {
	feedback := c.App.Group("/api/v1/feedback")
	{
		feedback.Post("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.FeedbackHandler.CreateFeedback)
		feedback.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.FeedbackHandler.GetLatestFeedback)
		feedback.Get("/sentiment", c.Middleware.AuthMiddleware(c.JWTService), c.FeedbackHandler.GetFeedbackSentiment)
	}
}

func (c *Config) Stats() {
	stats := c.App.Group("/api/v1/stats", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly())
	stats.Get("", c.StatsHandler.GetStats)
}

func (c *Config) Chat() {
	c.App.Get("/ws/chat", c.ChatHandler.Upgrade, c.ChatHandler.Serve())
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
