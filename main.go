package main

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"

	"strays-backend/cmd/config"
	migration "strays-backend/cmd/database/migrate"
	"strays-backend/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file found: %v", err)
	}
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}
	rdb := config.ConnectRedis()

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	app, err := config.NewApp(db, rdb)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
