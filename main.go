package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	authService "memberportal/internal/application/auth"
	"memberportal/internal/delivery/http/handler"
	"memberportal/internal/delivery/http/router"
	"memberportal/internal/infrastructure/config"
	"memberportal/internal/infrastructure/database"
	"memberportal/internal/infrastructure/repository"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Initialize services
	authSvc := authService.NewService(userRepo, sessionRepo, time.Duration(cfg.SessionTTL)*time.Minute)

	// Sweep expired sessions so abandoned rows don't pile up. Lookups
	// already treat expired sessions as missing; this is only hygiene.
	stopReaper := startSessionReaper(sessionRepo, time.Duration(cfg.SessionSweep)*time.Minute)
	defer close(stopReaper)

	// Initialize handlers
	renderer, err := handler.NewRenderer()
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}
	handlers := router.Handlers{
		Auth:  handler.NewAuthHandler(authSvc),
		Pages: handler.NewPageHandler(renderer),
		Admin: handler.NewAdminHandler(authSvc, renderer),
	}

	// Setup routes
	mux := router.Setup(handlers, authSvc, userRepo)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Member portal listening on http://localhost%s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

func openDatabase(cfg *config.Config) (*database.DB, error) {
	if cfg.DatabaseURL != "" {
		return database.NewPostgres(cfg.DatabaseURL)
	}
	return database.NewSQLite(cfg.DatabasePath)
}

func startSessionReaper(sessions authService.SessionRepository, interval time.Duration) chan struct{} {
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n, err := sessions.DeleteExpired(); err != nil {
					log.Printf("session sweep failed: %v", err)
				} else if n > 0 {
					log.Printf("session sweep removed %d expired sessions", n)
				}
			case <-stop:
				return
			}
		}
	}()
	return stop
}
