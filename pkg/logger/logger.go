// Package logger provides a structured, levelled logger built on log/slog.
//
// The base handler is chosen from APP_ENV: human-readable text in
// development, JSON in production. When MONGO_LOG_URI is configured,
// EnableMongo fans every record out to MongoDB as well:
//
//	logger.Info("product added", "id", p.ID, "name", p.Name)
//	// → time=... level=INFO msg="product added" id=1756… name="Smart Watch"
package logger

import (
	"log/slog"
	"os"

	"github.com/shashiranjanraj/dukaan/config"
)

var L *slog.Logger

func init() {
	L = slog.New(baseHandler())
	slog.SetDefault(L)
}

func baseHandler() slog.Handler {
	switch config.AppEnv() {
	case "production", "prod":
		opts := &slog.HandlerOptions{Level: slog.LevelInfo}
		return slog.NewJSONHandler(os.Stdout, opts) // structured JSON for log aggregators
	default:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		return slog.NewTextHandler(os.Stdout, opts) // human-readable for dev
	}
}

// EnableMongo attaches the asynchronous MongoDB handler alongside the base
// handler. A no-op when MONGO_LOG_URI is not configured. Returns the handler
// so the caller can Close() it on shutdown.
func EnableMongo() (*MongoHandler, error) {
	uri := config.MongoLogURI()
	if uri == "" {
		return nil, nil
	}

	mh, err := NewMongoHandler(uri, config.MongoLogDatabase(), config.MongoLogCollection())
	if err != nil {
		return nil, err
	}

	L = slog.New(NewMultiHandler(baseHandler(), mh))
	slog.SetDefault(L)
	return mh, nil
}

// ─────────────────────────────────────────────
// Short-hand helpers (use base logger)
// ─────────────────────────────────────────────

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
