package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/employee-portal/internal/handler/http/response"
	"github.com/cmlabs-hris/employee-portal/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	log *slog.Logger,
	allowedOrigins []string,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	statisticsHandler StatisticsHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(log, logger.RequestLoggerOptions()))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Group(func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json"))
		r.Post("/addEmployee", employeeHandler.AddEmployee)
		r.Post("/submitAttendance", attendanceHandler.SubmitAttendance)
	})

	r.Get("/getEmployees", employeeHandler.GetEmployees)
	r.Get("/attendance", attendanceHandler.GetAttendance)

	r.Route("/employees", func(r chi.Router) {
		r.Get("/statistics", statisticsHandler.GetStatistics)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}
