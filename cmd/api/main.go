package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/tranquility404/study-planner/internal/ai"
	"github.com/tranquility404/study-planner/internal/config"
	"github.com/tranquility404/study-planner/internal/handler"
	"github.com/tranquility404/study-planner/internal/middleware"
	"github.com/tranquility404/study-planner/internal/repository"
	"github.com/tranquility404/study-planner/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	mongoClient, err := repository.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		slog.Error("document store connection failed", "error", err)
		os.Exit(1)
	}
	defer mongoClient.Disconnect(ctx)

	userStore := repository.NewMySQLUserStore(db)
	indexStore := repository.NewMySQLIndexStore(db)
	scheduleStore := repository.NewMongoScheduleStore(mongoClient, cfg.MongoDatabase, cfg.MongoCollection)

	aiClient := ai.NewClient(ai.Config{
		Endpoint:   cfg.AzureOpenAIEndpoint,
		APIKey:     cfg.AzureOpenAIKey,
		APIVersion: cfg.AzureAPIVersion,
		Deployment: cfg.AzureDeployment,
		Timeout:    cfg.ModelTimeout,
	})

	authService := service.NewAuthService(userStore, cfg.JWTSecret, cfg.JWTExpiry)
	scheduleService := service.NewScheduleService(userStore, scheduleStore, indexStore, aiClient)
	chatService := service.NewChatService(scheduleService, aiClient)

	authHandler := handler.NewAuthHandler(authService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	chatHandler := handler.NewChatHandler(chatService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":200}`))
	})
	r.Post("/ping/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`"pong"`))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/signup", authHandler.HandleSignup)
		r.Post("/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Post("/generate-time-table/", scheduleHandler.HandleGenerate)
		r.Post("/fetch-time-table/", scheduleHandler.HandleFetch)
		r.Post("/get-all-time-table/", scheduleHandler.HandleGetAll)
		r.Post("/delete-time-table/", scheduleHandler.HandleDelete)
		r.Post("/score-data-update/", scheduleHandler.HandleScoreUpdate)
		r.Post("/study-buddy-chatbot/", chatHandler.HandleStudyBuddy)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
