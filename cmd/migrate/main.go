package main

import (
	"log"
	"os"

	"github.com/meeralouise/my-reading-world/internal/constant"
	"github.com/meeralouise/my-reading-world/internal/model"
	"github.com/meeralouise/my-reading-world/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running GORM migration...")

	// 3. AutoMigrate both tables
	if err := db.AutoMigrate(&model.World{}, &model.Sticker{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 4. Seed the shared world. Every deployment needs world 1 to exist; it is
	// the default target for stickers and is always editable.
	shared := model.World{
		Id:        constant.SharedWorldID,
		Name:      "Shared World",
		IsPrivate: false,
	}
	if err := db.FirstOrCreate(&shared, model.World{Id: constant.SharedWorldID}).Error; err != nil {
		log.Fatalf("Error: Failed to seed shared world: %v", err)
	}

	log.Println("Migration complete.")
}
