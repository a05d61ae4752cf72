package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cruise_insights/backend/internal/ai"
	"github.com/cruise_insights/backend/internal/assistant"
	"github.com/cruise_insights/backend/internal/config"
	"github.com/cruise_insights/backend/internal/dataset"
	httpapi "github.com/cruise_insights/backend/internal/http"
	"github.com/cruise_insights/backend/internal/query"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "cruise-insights-backend").Logger()

	data := dataset.Build(dataset.Options{
		CustomerSeed: cfg.CustomerSeed,
		BookingSeed:  cfg.BookingSeed,
		Population:   cfg.Population,
	})
	logger.Info().
		Int("customers", len(data.Customers)).
		Int("bookings", len(data.Bookings)).
		Int("campaigns", len(data.Campaigns)).
		Msg("dataset generated")

	chatRouter := assistant.NewRouter(query.NewEngine(data))

	var enhancer *ai.Enhancer
	if cfg.AssistantBaseURL != "" && cfg.AssistantModel != "" {
		enhancer = &ai.Enhancer{
			Assistant: ai.OpenAICompatAssistant{
				BaseURL:   cfg.AssistantBaseURL,
				Model:     cfg.AssistantModel,
				APIKey:    cfg.AssistantAPIKey,
				MaxTokens: 300,
			},
			Timeout: cfg.AssistantTimeout,
		}
		logger.Info().Str("model", cfg.AssistantModel).Msg("response enhancement enabled")
	} else {
		logger.Info().Msg("no assistant configured, serving canned responses")
	}

	router := httpapi.Router(cfg, data, chatRouter, enhancer, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
