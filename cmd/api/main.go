package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecodrop/ecodrop-backend/api/routes"
	"github.com/ecodrop/ecodrop-backend/internal/config"
	"github.com/ecodrop/ecodrop-backend/internal/handlers"
	"github.com/ecodrop/ecodrop-backend/internal/repositories"
	mongorepo "github.com/ecodrop/ecodrop-backend/internal/repositories/mongodb"
	"github.com/ecodrop/ecodrop-backend/internal/services"
	"github.com/ecodrop/ecodrop-backend/pkg/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The store handle is built here and injected downward. A missing URI is
	// not fatal: the process serves health checks and fails every store-backed
	// operation until configured.
	var userRepo repositories.UserRepository
	var dropoffRepo repositories.DropoffRepository

	mongoClient, err := mongodb.NewClient(context.Background(), cfg.MongoDB.URI)
	if err != nil {
		log.Printf("Warning: MongoDB not initialized: %v", err)
	} else {
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Printf("Error disconnecting from MongoDB: %v", err)
			}
		}()

		// Warm up the connection. A failed probe is logged, not fatal; the
		// driver retries on first use.
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := mongoClient.Ping(pingCtx); err != nil {
			log.Printf("MongoDB connection error during startup: %v", err)
		}
		cancel()

		db := mongoClient.Database(cfg.MongoDB.Database)
		userRepo = mongorepo.NewUserRepository(db)
		dropoffRepo = mongorepo.NewDropoffRepository(db)
	}

	userService := services.NewUserService(userRepo)
	dropoffService := services.NewDropoffService(dropoffRepo, userRepo)

	handlerDeps := routes.HandlerDependencies{
		HealthHandler:  handlers.NewHealthHandler(),
		UserHandler:    handlers.NewUserHandler(userService),
		DropoffHandler: handlers.NewDropoffHandler(dropoffService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
