package main

import (
	"log"

	"github.com/haydenmontgomery/Warbler/internal/config"
	"github.com/haydenmontgomery/Warbler/internal/database"
	"github.com/haydenmontgomery/Warbler/internal/seeds"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	config.LoadConfig()

	var db *gorm.DB
	var err error
	if config.AppConfig.DatabaseURL != "" {
		db, err = database.Connect(config.AppConfig.DatabaseURL)
	} else {
		// Local development fallback
		log.Println("DATABASE_URL not set, seeding ./warbler.db")
		db, err = gorm.Open(sqlite.Open("./warbler.db"), &gorm.Config{TranslateError: true})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	users, err := seeds.SeedUsers(db)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	if err := seeds.SeedMessages(db, users); err != nil {
		log.Fatalf("Failed to seed messages: %v", err)
	}

	log.Println("Seeding complete")
}
