// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported values for STORAGE_BACKEND.
const (
	BackendDrive = "drive"
	BackendMinio = "minio"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	StorageBackend string

	// Google Drive service account, tried in this order.
	CredentialsPath    string
	CredentialsJSON    string
	CredentialsContent string
	DriveFolderID      string

	// Object storage (S3-compatible: MinIO locally, any S3 provider in production)
	StorageEndpoint   string
	StorageAccessKey  string
	StorageSecretKey  string
	StorageBucket     string
	StorageUseSSL     bool
	StoragePublicBase string // browser-accessible base URL, e.g. "http://localhost:9000/uploads"
	StoragePrefix     string

	MaxUploadBytes int64
	// ReadTimeout bounds how long a client may take to send the request body.
	// UploadTimeout bounds the storage backend call only; the two budgets are separate.
	ReadTimeout   time.Duration
	UploadTimeout time.Duration

	// parseErrs collects values that were present but could not be parsed.
	parseErrs []error
}

// Load reads configuration from a .env file (if present) and environment variables.
// It reports whether a .env file was found so the caller can log it once a
// logger exists.
func Load() (*Config, bool) {
	dotenv := godotenv.Load() == nil

	c := &Config{
		Port:     getEnv("PORT", "8000"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendDrive)),

		CredentialsPath:    os.Getenv("GOOGLE_SERVICE_ACCOUNT_PATH"),
		CredentialsJSON:    os.Getenv("GOOGLE_SERVICE_ACCOUNT_KEY"),
		CredentialsContent: os.Getenv("GOOGLE_SERVICE_ACCOUNT_CONTENT"),
		DriveFolderID:      os.Getenv("GOOGLE_DRIVE_FOLDER_ID"),

		StorageEndpoint:   getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey:  getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		StorageSecretKey:  getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		StorageBucket:     getEnv("STORAGE_BUCKET", "uploads"),
		StorageUseSSL:     getEnv("STORAGE_USE_SSL", "false") == "true",
		StoragePublicBase: getEnv("STORAGE_PUBLIC_BASE", "http://localhost:9000/uploads"),
		StoragePrefix:     os.Getenv("STORAGE_PREFIX"),
	}

	maxBytes, err := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "33554432"), 10, 64)
	if err != nil {
		c.parseErrs = append(c.parseErrs, fmt.Errorf("MAX_UPLOAD_BYTES: %w", err))
	}
	c.MaxUploadBytes = maxBytes

	readTimeout, err := time.ParseDuration(getEnv("READ_TIMEOUT", "60s"))
	if err != nil {
		c.parseErrs = append(c.parseErrs, fmt.Errorf("READ_TIMEOUT: %w", err))
	}
	c.ReadTimeout = readTimeout

	timeout, err := time.ParseDuration(getEnv("UPLOAD_TIMEOUT", "60s"))
	if err != nil {
		c.parseErrs = append(c.parseErrs, fmt.Errorf("UPLOAD_TIMEOUT: %w", err))
	}
	c.UploadTimeout = timeout

	return c, dotenv
}

// Validate checks the configuration eagerly so a misconfigured service fails at boot
// rather than on the first upload.
func (c *Config) Validate() error {
	errs := append([]error(nil), c.parseErrs...)

	switch c.StorageBackend {
	case BackendDrive:
		if !c.HasCredentials() {
			errs = append(errs, errors.New("no Google credentials found: set GOOGLE_SERVICE_ACCOUNT_PATH, GOOGLE_SERVICE_ACCOUNT_KEY or GOOGLE_SERVICE_ACCOUNT_CONTENT"))
		}
		if c.DriveFolderID == "" {
			errs = append(errs, errors.New("GOOGLE_DRIVE_FOLDER_ID environment variable is not set"))
		}
	case BackendMinio:
		if c.StorageBucket == "" {
			errs = append(errs, errors.New("STORAGE_BUCKET environment variable is not set"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_BACKEND %q (want %q or %q)", c.StorageBackend, BackendDrive, BackendMinio))
	}

	if c.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes))
	}
	if c.ReadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("READ_TIMEOUT must be positive, got %s", c.ReadTimeout))
	}
	if c.UploadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("UPLOAD_TIMEOUT must be positive, got %s", c.UploadTimeout))
	}

	return errors.Join(errs...)
}

// HasCredentials returns true when at least one service-account input is set.
func (c *Config) HasCredentials() bool {
	return c.CredentialsPath != "" || c.CredentialsJSON != "" || c.CredentialsContent != ""
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
