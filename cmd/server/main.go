// SlashByte marketing site server: embedded frontend, chat assistant,
// consultation booking, and lead capture.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/richabhowmik03/slashbyte-rjs/internal/api"
	"github.com/richabhowmik03/slashbyte-rjs/internal/assistant"
	"github.com/richabhowmik03/slashbyte-rjs/internal/calendar"
	"github.com/richabhowmik03/slashbyte-rjs/internal/chat"
	"github.com/richabhowmik03/slashbyte-rjs/internal/chatlog"
	"github.com/richabhowmik03/slashbyte-rjs/internal/config"
	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
	"github.com/richabhowmik03/slashbyte-rjs/internal/events"
	"github.com/richabhowmik03/slashbyte-rjs/internal/identity"
	"github.com/richabhowmik03/slashbyte-rjs/internal/mailer"
	"github.com/richabhowmik03/slashbyte-rjs/internal/middleware"
	"github.com/richabhowmik03/slashbyte-rjs/internal/store"
	"github.com/richabhowmik03/slashbyte-rjs/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	// Conversation logger.
	convLog, err := chatlog.New(chatlog.Config{
		Enabled:       cfg.ConversationLog.Enabled,
		Dir:           cfg.ConversationLog.Dir,
		GlobalEnabled: cfg.ConversationLog.GlobalEnabled,
		GlobalPath:    cfg.ConversationLog.GlobalPath,
		QueueSize:     cfg.ConversationLog.QueueSize,
	}, logger)
	if err != nil {
		slog.Error("Failed to initialize conversation logger", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := convLog.Close(); closeErr != nil {
			slog.Error("Failed to close conversation logger", "error", closeErr)
		}
	}()

	// Calendar gateway (optional).
	var booker chat.Booker
	if cfg.Calendar.Enabled() {
		booker = calendar.NewBooker(calendar.NewGoogleGateway(cfg.Calendar))
		slog.Info("Calendar gateway configured", "calendar_id", cfg.Calendar.CalendarID)
	} else {
		slog.Info("Calendar not configured, bookings will be acknowledged without a calendar event")
	}

	// Email sender (optional).
	var sender mailer.Sender = mailer.Noop{}
	if cfg.Email.Enabled() {
		sender = mailer.New(cfg.Email)
		slog.Info("Email sender configured")
	} else {
		slog.Info("Email not configured, notifications disabled")
	}

	// Assistant backend (optional).
	var assistantClient *assistant.Client
	var svcAssistant chat.Assistant
	if cfg.AssistantAddr != "" {
		assistantClient = assistant.New(cfg.AssistantAddr)
		svcAssistant = assistantClient
		slog.Info("Assistant backend configured", "addr", cfg.AssistantAddr)
	} else {
		slog.Info("Assistant backend not configured, free-form questions use canned fallbacks")
	}

	// Event publisher (optional).
	var publisher events.Publisher = events.Noop{}
	if cfg.Events.Enabled() {
		p, err := events.New(cfg.Events.URL, cfg.Events.Exchange, logger)
		if err != nil {
			slog.Warn("Failed to connect to event broker, publishing disabled", "error", err)
		} else {
			publisher = p
			slog.Info("Event publisher connected", "exchange", cfg.Events.Exchange)
		}
	}
	defer func() {
		if closeErr := publisher.Close(); closeErr != nil {
			slog.Error("Failed to close event publisher", "error", closeErr)
		}
	}()

	// Host-side completion callbacks: persist the record, then notify the
	// inbox and the event bus. Failures are logged, never surfaced to the
	// visitor.
	hooks := chat.Hooks{
		OnLeadCaptured: func(rec domain.LeadRecord) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			lead := &domain.Lead{
				ID:        uuid.NewString(),
				Name:      rec.Name,
				Email:     rec.Email,
				Service:   rec.Service,
				CreatedAt: time.Now().UTC(),
			}
			if err := repo.SaveLead(ctx, lead); err != nil {
				slog.Error("Failed to save lead", "error", err, "email", rec.Email)
			}
			if err := sender.SendLeadNotification(ctx, rec); err != nil {
				slog.Error("Failed to send lead notification", "error", err, "email", rec.Email)
			}
			if err := publisher.Publish(ctx, events.KeyLeadCaptured, lead); err != nil {
				slog.Warn("Failed to publish lead event", "error", err)
			}
		},
		OnAppointmentBooked: func(draft domain.AppointmentDraft) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			appt := &domain.Appointment{
				ID:        uuid.NewString(),
				Name:      draft.Name,
				Email:     draft.Email,
				Date:      draft.Date,
				Time:      draft.Time,
				Service:   draft.Service,
				Timezone:  draft.Timezone,
				CreatedAt: time.Now().UTC(),
			}
			if err := repo.SaveAppointment(ctx, appt); err != nil {
				slog.Error("Failed to save appointment", "error", err, "email", draft.Email)
			}
			if err := publisher.Publish(ctx, events.KeyAppointmentBooked, appt); err != nil {
				slog.Warn("Failed to publish appointment event", "error", err)
			}
		},
	}

	// Initialize services.
	sm := chat.NewSessionManager()
	svc := chat.NewService(sm, chat.ServiceConfig{
		Booker:        booker,
		Assistant:     svcAssistant,
		Hooks:         hooks,
		Log:           convLog,
		AutoOpenDelay: cfg.AutoOpenDelay,
	})

	// Initialize handlers.
	handler := api.NewHandler(repo, svc, sender, publisher, assistantClient)
	wsHandler := chat.NewWebSocketHandler(svc, cfg.SiteURL, cfg.IsDevelopment())

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(identity.Middleware(cfg.IsDevelopment()))

	// API routes.
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", handler.HandleChat)
		r.Get("/chat/session", handler.HandleChatSession)
		r.Post("/chat/reset", handler.HandleChatReset)
		r.Post("/contact", handler.HandleContact)
		r.Get("/leads", handler.HandleListLeads)
		r.Get("/appointments", handler.HandleListAppointments)
		r.Get("/health", handler.HandleHealth)
	})

	// WebSocket endpoint.
	r.Get("/ws/chat", wsHandler.ServeHTTP)

	// Serve embedded frontend (SPA catch-all).
	r.Handle("/*", web.SPAHandler())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // WebSocket chat connections stay open indefinitely
		IdleTimeout:  120 * time.Second,
	}

	// Start session TTL sweeper.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sm.StartTTLSweeper(ctx, cfg.SessionTTL)
	slog.Info("Session sweeper started", "session_ttl", cfg.SessionTTL)

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
