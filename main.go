package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/finance-tracker/backend/internal/types"
	"github.com/finance-tracker/backend/pkg/models"
	"github.com/finance-tracker/backend/pkg/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title						Finance Tracker
// @description				The backend for the finance tracker. Records income and expenses, tracks savings goals and reports on them.
// @securityDefinitions.basic	BasicAuth
func main() {
	// A .env file is optional, the environment takes precedence
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	err := connect()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if os.Getenv("SEED_DEMO") == "true" {
		_, err = models.SeedDemo(models.DB, types.DateOf(time.Now()))
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = "http://localhost:8080"
	}

	url, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Msgf("Environment variable API_URL must be a valid URL: %s", err)
	}

	r, teardown, err := router.Config(url)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(r.Group(url.Path))

	port, ok := os.LookupEnv("PORT")
	if !ok {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("listen: %s", err)
		}
	}()
	log.Info().Str("addr", srv.Addr).Msg("Backend startup complete")

	// Wait for interrupt signal to gracefully shut down the server with
	// a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Msgf("Server forced to shutdown: %s", err)
		return
	}

	log.Info().Msg("Server exited")
}

// connect connects to PostgreSQL when DB_HOST is set and to the
// SQLite database at DB_PATH otherwise.
func connect() error {
	host, ok := os.LookupEnv("DB_HOST")
	if ok {
		port, ok := os.LookupEnv("DB_PORT")
		if !ok {
			port = "5432"
		}

		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))

		return models.ConnectPostgres(dsn)
	}

	path, ok := os.LookupEnv("DB_PATH")
	if !ok {
		path = filepath.Join("data", "finance.db")
	}

	// Create the data directory
	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return err
	}

	return models.Connect(path)
}
