package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/api"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/jewelry-agent/web"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg := setup.LoadConfig()

	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.New(cfg.LogLevel, cfg.LogFile)
	appLogger := log.Logger

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Unable to load dependencies")
	}

	home, err := web.NewHomepage(deps.Validator.Catalog().Categories())
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Unable to build homepage")
	}

	// API
	handler := api.NewHandler(deps.Service, deps.Validator, cfg.KeyStatus(), home, &appLogger)
	container := restful.NewContainer()
	container.Filter(middleware.RequestID)
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)
	api.RegisterOpenAPI(container)

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	// Upstream calls may take up to UPSTREAM_TIMEOUT, so the write timeout
	// has to outlast them.
	server := http.Server{
		Addr:         cfg.Addr(),
		Handler:      corsHandler.Handler(container),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.UpstreamTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info().Str("address", cfg.Addr()).Msg("Starting Jewelry Design Gateway")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("Graceful shutdown failed")
		os.Exit(1)
	}
}
