package logger

import (
	"io"
	"log/slog"

	"github.com/go-chi/httplog/v3"
)

// New returns a JSON slog logger whose attributes follow the ECS schema used
// by the request logger.
func New(w io.Writer, app, env string, level slog.Level) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", app),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)
}

// RequestLoggerOptions are shared by every router.
func RequestLoggerOptions() *httplog.Options {
	return &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}
}
