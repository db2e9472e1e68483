package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/cvargas352/Projeto-integrador-final/config"
	"github.com/cvargas352/Projeto-integrador-final/database"
	"github.com/cvargas352/Projeto-integrador-final/pricing"
	"github.com/cvargas352/Projeto-integrador-final/router"
	"github.com/cvargas352/Projeto-integrador-final/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	// Delivery fee bands are a placeholder policy keyed on the first
	// postal-code digit; swap the implementation here when the real
	// tiering rules arrive.
	fees := pricing.DefaultFeePolicy()

	r := router.SetupRouter(db, fees)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
