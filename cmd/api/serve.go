package main

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"callnotes-backend/internal/ai"
	"callnotes-backend/internal/annotate"
	"callnotes-backend/internal/auth"
	"callnotes-backend/internal/compliance"
	"callnotes-backend/internal/config"
	"callnotes-backend/internal/db"
	"callnotes-backend/internal/leaderboard"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	database, err := db.Connect(ctx, cfg.ConnString())
	if err != nil {
		logger.Error("failed to connect to postgres", zap.Error(err))
		return err
	}
	defer database.Close()
	logger.Info("connected to postgres", zap.String("host", cfg.DBHost))

	var gemini annotate.Annotator
	if cfg.GeminiAPIKey != "" {
		g, err := ai.NewGeminiAnnotator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return err
		}
		gemini = g
		logger.Info("gemini annotator enabled", zap.String("model", cfg.GeminiModel))
	} else {
		logger.Info("gemini annotator disabled, rule engine only")
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", compliance.HealthHandler())
	mux.Handle("/api/compliance", compliance.NewHandler(annotate.RuleAnnotator{}, gemini, database, logger))

	board := leaderboard.Handler(database, logger)
	adminEnabled := cfg.JWTSecret != "" && cfg.AdminPassword != ""
	reset := auth.New([]byte(cfg.JWTSecret)).RequireAdmin(leaderboard.ResetHandler(database, logger))
	mux.HandleFunc("/api/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			if !adminEnabled {
				http.Error(w, "admin operations disabled", http.StatusNotFound)
				return
			}
			reset(w, r)
			return
		}
		board(w, r)
	})

	login := auth.LoginHandler([]byte(cfg.JWTSecret), cfg.AdminPassword)
	mux.HandleFunc("/api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		if !adminEnabled {
			http.Error(w, "admin operations disabled", http.StatusNotFound)
			return
		}
		login(w, r)
	})

	// Wide-open CORS: the games are served from static hosting.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Platform", "X-Session-Id", "X-App-Version", "Idempotency-Key"},
	})

	handler := requestLogger(logger, c.Handler(mux))

	logger.Info("api server listening", zap.String("addr", cfg.HTTPAddr))
	return http.ListenAndServe(cfg.HTTPAddr, handler)
}

// requestLogger tags every request with an id and logs it on completion.
func requestLogger(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
