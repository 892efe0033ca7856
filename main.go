package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Patricia-Kubende/MaizeMate-Backend/config"
	"github.com/Patricia-Kubende/MaizeMate-Backend/db"
	"github.com/Patricia-Kubende/MaizeMate-Backend/handlers"
	"github.com/Patricia-Kubende/MaizeMate-Backend/ml"
	"github.com/Patricia-Kubende/MaizeMate-Backend/routes"
	"github.com/Patricia-Kubende/MaizeMate-Backend/services"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.SecretKey == "" {
		log.Fatal().Msg("SECRET_KEY must be set")
	}

	// Initialize database
	database, err := db.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := database.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to retrieve underlying SQL DB")
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("Error closing DB connection")
		}
	}()

	// Load the trained model once at startup
	model, err := ml.Load(cfg.ModelPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load model")
	}

	secret := []byte(cfg.SecretKey)

	serviceManager := services.NewServiceManager(database, model, secret)
	handlerManager := handlers.NewHandlerManager(serviceManager)

	r := routes.SetupRoutes(handlerManager, secret)

	log.Info().Str("port", cfg.Port).Msg("🚀 Maize Yield Prediction API starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
