package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"strays-backend/internal/api/handlers"
	"strays-backend/internal/api/routes"
	"strays-backend/internal/middleware"
	"strays-backend/internal/utils"
	"strays-backend/internal/utils/mailing"
	"strays-backend/internal/utils/storage"
	"strays-backend/pkg/chat"
	"strays-backend/pkg/donation"
	"strays-backend/pkg/event"
	"strays-backend/pkg/feedback"
	"strays-backend/pkg/geocode"
	"strays-backend/pkg/jwt"
	"strays-backend/pkg/report"
	"strays-backend/pkg/stats"
	"strays-backend/pkg/user"
)

func NewApp(db *gorm.DB, rdb *redis.Client) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()
	resolver := geocode.NewNominatimResolver()

	// Repository
	userRepository := user.NewUserRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	reportRepository := report.NewReportRepository(db)
	eventRepository := event.NewEventRepository(db)
	feedbackRepository := feedback.NewFeedbackRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, rdb)
	donationService := donation.NewDonationService(donationRepository, userRepository, resolver, mailer)
	reportService := report.NewReportService(reportRepository, userRepository, resolver, mailer, s3)
	eventService := event.NewEventService(eventRepository, userRepository)
	feedbackService := feedback.NewFeedbackService(feedbackRepository)
	statsService := stats.NewStatsService(donationRepository, reportRepository)

	// Chat hub
	hub := chat.NewHub()
	go hub.Run()

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	reportHandler := handlers.NewReportHandler(reportService, validator)
	eventHandler := handlers.NewEventHandler(eventService, validator)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, validator)
	statsHandler := handlers.NewStatsHandler(statsService)
	chatHandler := handlers.NewChatHandler(hub, jwtService, userService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		DonationHandler: donationHandler,
		ReportHandler:   reportHandler,
		EventHandler:    eventHandler,
		FeedbackHandler: feedbackHandler,
		StatsHandler:    statsHandler,
		ChatHandler:     chatHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
