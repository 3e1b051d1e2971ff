package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"strays-backend/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Report{}); err != nil {
		log.Fatalf("Error migrating report database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Event{}); err != nil {
		log.Fatalf("Error migrating event database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Feedback{}); err != nil {
		log.Fatalf("Error migrating feedback database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
