package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/anishgupta6801/LUMINA-WEBSITE/config"
	"github.com/anishgupta6801/LUMINA-WEBSITE/controller"
	"github.com/anishgupta6801/LUMINA-WEBSITE/database"
	"github.com/anishgupta6801/LUMINA-WEBSITE/repository"
	"github.com/anishgupta6801/LUMINA-WEBSITE/route"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	database.InitDatabase()

	controller.Reservations = repository.NewMongoReservationRepository(database.DB)
	controller.Contacts = repository.NewMongoContactRepository(database.DB)
	controller.Subscribers = repository.NewMongoNewsletterRepository(database.DB)

	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Println("Running in debug mode")
	}

	// Initialize router
	router := gin.Default()

	// Configure CORS
	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if cfg.AllowedOrigins != "" {
		origins = append(origins, cfg.AllowedOrigins)
	}
	corsConfig := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))
	log.Println("CORS configured")

	// Setup routes
	route.APIRoutes(router)
	log.Println("Routes configured successfully")

	// Serve the built frontend, falling back to index.html for client-side
	// routed pages (thank-you, admin).
	frontendPath := "./dist"
	if _, err := os.Stat(frontendPath); os.IsNotExist(err) {
		log.Println("Warning: Frontend build directory not found, static file serving may fail")
	}
	router.StaticFS("/assets", http.Dir(filepath.Join(frontendPath, "assets")))
	router.NoRoute(func(c *gin.Context) {
		c.File(filepath.Join(frontendPath, "index.html"))
	})
	log.Println("Static file serving configured")

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Block until an interrupt arrives, then drain in-flight requests and
	// release the store connection before exit.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	database.Close(shutdownCtx)
}
