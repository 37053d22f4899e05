package web

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/employee-portal/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(log *slog.Logger, portalHandler PortalHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(httplog.RequestLogger(log, logger.RequestLoggerOptions()))
	r.Use(middleware.CleanPath)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))

	r.Get("/", portalHandler.Index)

	r.Route("/employees", func(r chi.Router) {
		r.Post("/", portalHandler.SubmitEmployee)
		r.Post("/reset", portalHandler.ResetEmployee)
	})
	r.Post("/attendance", portalHandler.UpdateAttendance)
	r.Post("/statistics/toggle", portalHandler.ToggleStatistics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Page not found", http.StatusNotFound)
	})

	return r
}
