package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"leadreach/internal/adapter/repo"
	"leadreach/internal/http/handlers"
	"leadreach/internal/http/httpapi"
	"leadreach/internal/infra"
	"leadreach/internal/infra/geoip"
	"leadreach/internal/outreach"
	"leadreach/internal/providers/textgen"
)

func main() {
	// Load .env when present (optional in production).
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip database unavailable, request origin disabled")
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize text generator")
	}
	service := outreach.NewService(gen, cfg.GenerateTimeout)

	app := handlers.NewApp(
		repo.NewLeadRepository(dbpool),
		repo.NewMessageRepository(dbpool),
		repo.NewStatsRepository(dbpool),
		service,
		logger,
	)

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:          logger,
		GeoIP:           resolver,
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

func newGenerator(cfg *infra.Config) (textgen.Generator, error) {
	switch cfg.TextGenProvider {
	case "gemini":
		return textgen.NewGeminiGenerator(textgen.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
	default:
		return textgen.NewOpenAIGenerator(textgen.OpenAIOptions{
			APIKey:       cfg.OpenAIAPIKey,
			Model:        cfg.OpenAIModel,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
		})
	}
}
