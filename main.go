package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"blogapi/internal/handlers"
	"blogapi/internal/models"
	"blogapi/internal/repositories"
	"blogapi/internal/services"
	"blogapi/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "3000")
	viper.AutomaticEnv()

	databaseURL := viper.GetString("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	rabbitMQURL := viper.GetString("RABBITMQ_URL")
	addr := fmt.Sprintf("%s:%s", viper.GetString("SERVER_HOST"), viper.GetString("SERVER_PORT"))

	// --- Database ---
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Bound the connection pool: at most 10 concurrent connections, recycled
	// after 30 minutes. Repository statements bound their own acquire waits.
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to access underlying connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	if rabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set, event publication disabled")
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	postRepo := repositories.NewGORMPostRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo, publisher)
	postService := services.NewPostService(postRepo, publisher)
	authService := services.NewAuthService(userRepo, jwtSecret)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService)
	postHandler := handlers.NewPostHandler(postService)
	authHandler := handlers.NewAuthHandler(authService, userService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	app.Get("/health", handlers.HandleHealthCheck)

	userHandler.RegisterRoutes(app)
	postHandler.RegisterRoutes(app)
	authHandler.RegisterRoutes(app)

	// --- Start HTTP Server ---
	log.Printf("Starting server on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
