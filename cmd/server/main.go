package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/clubsphere/internal/config"
	"github.com/forgo/clubsphere/internal/database"
	"github.com/forgo/clubsphere/internal/handler"
	"github.com/forgo/clubsphere/internal/middleware"
	"github.com/forgo/clubsphere/internal/repository"
	"github.com/forgo/clubsphere/internal/service"
	"github.com/forgo/clubsphere/internal/upload"
	"github.com/forgo/clubsphere/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize upload store
	uploadStore, err := upload.NewLocalStore(cfg.Upload.Dir, cfg.Upload.Publication, cfg.Upload.MaxBytes)
	if err != nil {
		slog.Error("failed to initialize upload store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	clubRepo := repository.NewClubRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	clubService := service.NewClubService(clubRepo, userRepo, logger)
	announcementService := service.NewAnnouncementService(clubRepo, userRepo)
	activityService := service.NewActivityService(clubRepo)
	meetingService := service.NewMeetingService(clubRepo)
	pollService := service.NewPollService(clubRepo)
	resourceService := service.NewResourceService(clubRepo, uploadStore, logger)
	eventService := service.NewEventService(clubRepo, userRepo)
	achievementService := service.NewAchievementService(clubRepo)
	feedbackService := service.NewFeedbackService(clubRepo, userRepo)
	contactService := service.NewContactService(clubRepo)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(clubService)
	clubHandler := handler.NewClubHandler(clubService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	activityHandler := handler.NewActivityHandler(activityService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	pollHandler := handler.NewPollHandler(pollService)
	resourceHandler := handler.NewResourceHandler(resourceService, uploadStore, cfg.Upload.MaxBytes)
	eventHandler := handler.NewEventHandler(eventService)
	achievementHandler := handler.NewAchievementHandler(achievementService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	contactHandler := handler.NewContactHandler(contactService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)

	// Protected endpoints
	authMiddleware := middleware.Auth(authService)
	protected := func(h http.HandlerFunc) http.Handler {
		return authMiddleware(h)
	}

	mux.Handle("GET /v1/auth/me", protected(authHandler.Me))

	// User club listings
	mux.Handle("GET /v1/users/me/clubs", protected(userHandler.MyClubs))
	mux.Handle("GET /v1/users/me/invitations", protected(userHandler.MyInvitations))

	// Club and membership endpoints
	mux.Handle("POST /v1/clubs", protected(clubHandler.Create))
	mux.Handle("GET /v1/clubs", protected(clubHandler.List))
	mux.Handle("GET /v1/clubs/{clubId}", protected(clubHandler.Get))
	mux.Handle("PUT /v1/clubs/{clubId}", protected(clubHandler.Update))
	mux.Handle("POST /v1/clubs/{clubId}/invite", protected(clubHandler.Invite))
	mux.Handle("POST /v1/clubs/{clubId}/invitations/respond", protected(clubHandler.RespondInvitation))
	mux.Handle("DELETE /v1/clubs/{clubId}/members/{userId}", protected(clubHandler.RemoveMember))

	// Announcement endpoints
	mux.Handle("POST /v1/clubs/{clubId}/announcements", protected(announcementHandler.Create))
	mux.Handle("GET /v1/clubs/{clubId}/announcements", protected(announcementHandler.List))

	// Activity log endpoints
	mux.Handle("POST /v1/clubs/{clubId}/activities", protected(activityHandler.Create))
	mux.Handle("GET /v1/clubs/{clubId}/activities", protected(activityHandler.List))

	// Meeting endpoints
	mux.Handle("POST /v1/clubs/{clubId}/meetings", protected(meetingHandler.Create))
	mux.Handle("GET /v1/clubs/{clubId}/meetings", protected(meetingHandler.List))
	mux.Handle("POST /v1/clubs/{clubId}/meetings/{meetingId}/attendance", protected(meetingHandler.MarkAttendance))

	// Poll endpoints
	mux.Handle("POST /v1/clubs/{clubId}/polls", protected(pollHandler.Create))
	mux.Handle("GET /v1/clubs/{clubId}/polls", protected(pollHandler.List))
	mux.Handle("POST /v1/clubs/{clubId}/polls/{pollId}/vote", protected(pollHandler.Vote))
	mux.Handle("PUT /v1/clubs/{clubId}/polls/{pollId}", protected(pollHandler.Update))
	mux.Handle("DELETE /v1/clubs/{clubId}/polls/{pollId}", protected(pollHandler.Delete))

	// Resource endpoints
	mux.Handle("POST /v1/clubs/{clubId}/resources", protected(resourceHandler.Create))
	mux.Handle("GET /v1/clubs/{clubId}/resources", protected(resourceHandler.List))
	mux.Handle("DELETE /v1/clubs/{clubId}/resources/{resourceId}", protected(resourceHandler.Delete))

	// Event endpoints
	mux.Handle("POST /v1/clubs/{clubId}/events", protected(eventHandler.Create))
	mux.Handle("GET /v1/clubs/{clubId}/events", protected(eventHandler.List))
	mux.Handle("POST /v1/clubs/{clubId}/events/{eventId}/volunteers", protected(eventHandler.Volunteer))
	mux.Handle("GET /v1/clubs/{clubId}/events/{eventId}/volunteers", protected(eventHandler.ListVolunteers))
	mux.Handle("DELETE /v1/clubs/{clubId}/events/{eventId}", protected(eventHandler.Delete))

	// Achievement endpoints
	mux.Handle("POST /v1/clubs/{clubId}/achievements", protected(achievementHandler.Create))
	mux.Handle("GET /v1/clubs/{clubId}/achievements", protected(achievementHandler.List))
	mux.Handle("PUT /v1/clubs/{clubId}/achievements/{achievementId}", protected(achievementHandler.Update))
	mux.Handle("DELETE /v1/clubs/{clubId}/achievements/{achievementId}", protected(achievementHandler.Delete))
	mux.Handle("POST /v1/clubs/{clubId}/achievements/{achievementId}/award", protected(achievementHandler.Award))
	mux.Handle("POST /v1/clubs/{clubId}/achievements/{achievementId}/revoke", protected(achievementHandler.Revoke))

	// Feedback endpoints
	mux.Handle("POST /v1/clubs/{clubId}/feedback", protected(feedbackHandler.Submit))
	mux.Handle("GET /v1/clubs/{clubId}/feedback", protected(feedbackHandler.List))

	// Contact directory endpoints
	mux.Handle("POST /v1/clubs/{clubId}/contacts", protected(contactHandler.Create))
	mux.Handle("GET /v1/clubs/{clubId}/contacts", protected(contactHandler.List))
	mux.Handle("PUT /v1/clubs/{clubId}/contacts/{contactId}", protected(contactHandler.Update))
	mux.Handle("DELETE /v1/clubs/{clubId}/contacts/{contactId}", protected(contactHandler.Delete))

	// Uploaded resource blobs
	mux.Handle("GET "+uploadStore.URLPrefix()+"/",
		http.StripPrefix(uploadStore.URLPrefix()+"/", http.FileServer(http.Dir(uploadStore.Dir()))))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
