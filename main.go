package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"stockroom/cmd"
	"stockroom/internal/database"
	"stockroom/internal/inspections"
	"stockroom/internal/inventory/categories"
	"stockroom/internal/inventory/entries"
	"stockroom/internal/inventory/instances"
	"stockroom/internal/inventory/items"
	"stockroom/internal/inventory/locinventory"
	"stockroom/internal/locations"
	"stockroom/internal/logger"
	"stockroom/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := database.RunMigrations("./migrations", logger.NewLogger()); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer db.Close()

	log.Println("Connected to the database successfully!")

	repo := repository.NewRepository(db)

	locationRepo := locations.NewLocationRepository(repo)
	categoryRepo := categories.NewCategoryRepository(repo)
	itemRepo := items.NewItemRepository(repo)
	instanceRepo := instances.NewRepository(repo)
	entryRepo := entries.NewRepository(repo)
	inspectionRepo := inspections.NewRepository(repo)
	inventoryRepo := locinventory.NewRepository(repo)

	router := gin.Default()
	api := router.Group("/api")

	locations.NewLocationHandler(locationRepo).RegisterRoutes(api)
	categories.NewCategoryHandler(categoryRepo).RegisterRoutes(api)
	items.NewItemHandler(itemRepo).RegisterRoutes(api)
	instances.NewInstanceHandler(instanceRepo).RegisterRoutes(api)
	entries.NewHandler(repo, entryRepo, instanceRepo, itemRepo, locationRepo).RegisterRoutes(api)
	inspections.NewHandler(repo, inspectionRepo, entryRepo, instanceRepo, itemRepo).RegisterRoutes(api)
	locinventory.NewInventoryHandler(inventoryRepo).RegisterRoutes(api)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := router.Run(os.Getenv("APP_HOST")); err != nil {
		panic(err)
	}
}
