package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"kindergarden/internal/config"
	"kindergarden/internal/database"
	"kindergarden/internal/game"
	"kindergarden/internal/generator"
	"kindergarden/internal/handlers"
	"kindergarden/internal/repository"
	"kindergarden/internal/security"
	"kindergarden/internal/service"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	logrus.WithField("type", cfg.DatabaseType).Info("database connection established")

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}

	// Repositories
	playerRepo := repository.NewPlayerRepo(db)
	answerRepo := repository.NewAnswerRepo(db)

	// Services
	progressService := service.NewProgressService(playerRepo, answerRepo)
	sessionManager := game.NewManager(generator.New(), cfg.PointsPerCorrect)
	gameService := service.NewGameService(progressService, sessionManager)
	syncService := service.NewSyncService(playerRepo, answerRepo, cfg.SyncUpstreamURL, cfg.SyncTimeout)

	tokenIssuer := security.NewTokenIssuer(cfg.JWTSecret, cfg.AdminSessionTTL)
	adminService := service.NewAdminService(playerRepo, answerRepo, sessionManager,
		cfg.AdminPasswordHash, tokenIssuer, cfg.AdminAllowedEmails)
	reportService, err := service.NewReportService(cfg.EmailRegion, cfg.EmailSender)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize report service")
	}

	var googleOAuth *oauth2.Config
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		googleOAuth = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email"},
		}
	}

	// Handlers
	mw := handlers.NewMiddleware(adminService, cfg.JWTSecret)
	gameHandler := handlers.NewGameHandler(progressService, gameService)
	syncHandler := handlers.NewSyncHandler(syncService)
	adminHandler := handlers.NewAdminHandler(adminService, progressService, reportService, mw, googleOAuth)

	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, gameHandler, syncHandler, adminHandler, mw)

	go sweepCompletedSessions(sessionManager)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handlers.Logging(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.WithField("addr", addr).Info("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("shutdown error")
	}
}

// sweepCompletedSessions periodically drops finished sessions the players
// never replaced with a new round.
func sweepCompletedSessions(sessions *game.Manager) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if removed := sessions.SweepCompleted(1 * time.Hour); removed > 0 {
			logrus.WithField("count", removed).Info("swept completed sessions")
		}
	}
}
