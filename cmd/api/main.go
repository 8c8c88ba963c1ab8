//	@title			Drive Drop API
//	@version		1.0.0
//	@description	Uploads files to a Google Drive folder (or an S3-compatible bucket) with a service account.
//
//	@host		localhost:8000
//	@BasePath	/

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/drivedrop/service/internal/backend"
	"github.com/drivedrop/service/internal/config"
	"github.com/drivedrop/service/internal/health"
	appMiddleware "github.com/drivedrop/service/internal/middleware"
	"github.com/drivedrop/service/internal/storage"
	"github.com/drivedrop/service/internal/upload"

	_ "github.com/drivedrop/service/docs/swagger"
)

func main() {
	cfg, dotenv := config.Load()
	log := newLogger(cfg)
	if !dotenv {
		log.Info("no .env file found, reading from environment")
	}

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	// Open the backend now so bad credentials stop the process at boot.
	store := storage.NewLazy(backend.Opener(cfg, log))
	bootCtx, cancelBoot := context.WithTimeout(context.Background(), cfg.UploadTimeout)
	defer cancelBoot()
	if _, err := store.Get(bootCtx); err != nil {
		log.WithError(err).Fatal("object storage init failed")
	}

	// Wire dependencies: storage → service → handler
	uploadSvc := upload.NewService(store, cfg.UploadTimeout, log)
	uploadHandler := upload.NewHandler(uploadSvc, cfg.MaxUploadBytes, log)
	healthHandler := health.NewHandler()

	// The write deadline runs from the end of the headers, so it has to cover
	// reading the body and the backend call.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(log, uploadHandler, healthHandler),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.ReadTimeout + cfg.UploadTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.WithFields(logrus.Fields{
			"port":    cfg.Port,
			"env":     cfg.AppEnv,
			"backend": cfg.StorageBackend,
		}).Info("server listening")
		log.Infof("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-quit
	log.Info("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("forced shutdown")
	}

	log.Info("server stopped")
}

func newRouter(log logrus.FieldLogger, uploadHandler *upload.Handler, healthHandler *health.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(log))
	r.Use(chiMiddleware.Recoverer)
	// Wide open for development; narrow AllowedOrigins before exposing publicly.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Get("/test", healthHandler.Test)
	r.Get("/health", healthHandler.Health)
	r.Post("/upload", uploadHandler.Upload)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if cfg.IsProduction() {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
