package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"detailpage/internal/copywriter"
	"detailpage/internal/domain"
	"detailpage/internal/export"
	"detailpage/internal/http/handlers"
	httpapi "detailpage/internal/http/httpapi"
	"detailpage/internal/infra"
	"detailpage/internal/snapshot"
	"detailpage/internal/state"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	snaps, err := snapshot.NewStore(cfg.SnapshotPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open snapshot store")
	}

	// Pick up where the last session left off when a default snapshot exists.
	initial := domain.DefaultProductData()
	if restored, err := snaps.Load(context.Background(), "default"); err == nil {
		initial = restored
		logger.Info().Msg("restored default snapshot")
	} else if !errors.Is(err, domain.ErrNotFound) {
		logger.Warn().Err(err).Msg("default snapshot unreadable, starting fresh")
	}
	store := state.New(initial)

	var writer copywriter.Writer
	switch cfg.CopyProvider {
	case "static":
		writer = copywriter.NewStaticWriter()
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			logger.Warn().Msg("GEMINI_API_KEY not set, copywriting disabled")
		} else {
			writer, err = copywriter.NewGeminiWriter(copywriter.GeminiOptions{
				APIKey:  cfg.GeminiAPIKey,
				Model:   cfg.GeminiModel,
				BaseURL: cfg.GeminiBaseURL,
				Logger:  logger,
			})
			if err != nil {
				logger.Fatal().Err(err).Msg("failed to configure copywriter")
			}
		}
	default:
		logger.Warn().Str("provider", cfg.CopyProvider).Msg("unknown copy provider, copywriting disabled")
	}

	raster := export.NewCompositor(cfg.ExportScale)
	exporter := export.NewExporter(raster, logger, cfg.SettleDelay)

	app := handlers.NewApp(cfg, logger, store, snaps, writer, exporter)
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
