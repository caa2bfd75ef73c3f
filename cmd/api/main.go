package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "suntimes-api/docs"
	"suntimes-api/internal/config"
	"suntimes-api/internal/estimate"
	"suntimes-api/internal/handler"
	"suntimes-api/internal/repository"
	"suntimes-api/internal/service"
	"suntimes-api/internal/sunapi"
	"suntimes-api/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	setupLogger(config.AppEnv, config.LogLevel)

	displayLocation, err := config.DisplayLocation()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load display timezone")
	}

	// Preset catalog
	var presets service.PresetRepository
	if config.DBSource != "" {
		conn, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		presets = repository.NewRepository(conn)
		log.Info().Msg("serving presets from database")
	} else {
		presets = repository.NewMemoryPresets(repository.DefaultPresets)
		log.Info().Int("count", len(repository.DefaultPresets)).Msg("serving built-in presets")
	}

	// Initialize layers
	sunClient := sunapi.NewClient(config.SunAPIBaseURL, config.SunAPITimeout)
	sunTimesService := service.NewSunTimesService(presets, sunClient, estimate.NewEstimator())

	renderer := view.NewRenderer(displayLocation, config.TimestampLayout)
	display := view.NewDisplay(renderer)

	sunTimesHandler := handler.NewSunTimesHandler(sunTimesService, renderer)
	presetHandler := handler.NewPresetHandler(sunTimesService)
	displayHandler := handler.NewDisplayHandler(sunTimesService, display)

	if config.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.GET("/presets", presetHandler.Presets)
		api.GET("/sun-times", sunTimesHandler.SunTimes)
		api.GET("/sun-times/estimate", sunTimesHandler.Estimate)

		api.GET("/display", displayHandler.Display)
		api.POST("/display/refresh", displayHandler.Refresh)
		api.DELETE("/display", displayHandler.Clear)
	}

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("address", config.ServerAddress).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
}

func setupLogger(env, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
