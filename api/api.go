package main

import (
	"log"
	"os"

	"gubu/api/modules"
	"gubu/api/routes"
	"gubu/pkg/config"
	"gubu/pkg/database"
	"gubu/pkg/redis"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading the configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Error running the migrations: %v", err)
	}

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	// Create a module with all necessary handlers.
	module := modules.NewModule(cfg, db, redisClient)
	defer module.Close()

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.UserHandler,
		module.GameHandler,
		module.PlayerHandler,
		module.FriendshipHandler,
		module.MessageThreadHandler,
		module.RecommendationHandler,
	)

	// Start the server.
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Error starting the server: %v", err)
	}
}
