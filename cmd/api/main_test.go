package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivedrop/service/internal/config"
	"github.com/drivedrop/service/internal/health"
	"github.com/drivedrop/service/internal/storage"
	"github.com/drivedrop/service/internal/upload"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := storage.NewLazy(func(context.Context) (storage.Storage, error) {
		return nil, assert.AnError
	})
	svc := upload.NewService(store, time.Second, log)
	return newRouter(log, upload.NewHandler(svc, 1<<20, log), health.NewHandler())
}

func TestRouter_Routes(t *testing.T) {
	r := testRouter(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/test", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodPost, "/upload", http.StatusBadRequest},
		{http.MethodGet, "/upload", http.StatusMethodNotAllowed},
		{http.MethodGet, "/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/upload", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "X-Custom-Header")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestNewLogger(t *testing.T) {
	prod := newLogger(&config.Config{AppEnv: "production", LogLevel: "debug"})
	assert.IsType(t, &logrus.JSONFormatter{}, prod.Formatter)
	assert.Equal(t, logrus.DebugLevel, prod.GetLevel())

	dev := newLogger(&config.Config{AppEnv: "development", LogLevel: "loud"})
	assert.IsType(t, &logrus.TextFormatter{}, dev.Formatter)
	assert.Equal(t, logrus.InfoLevel, dev.GetLevel())
}
