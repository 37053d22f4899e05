package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/employee-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal/internal/domain/employee"
	"github.com/cmlabs-hris/employee-portal/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.Error(), validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEmptyAttendance):
		BadRequest(w, "Attendance must contain at least one entry", nil)
	case errors.Is(err, attendance.ErrInvalidStatus):
		ValidationError(w, "Status must be Present or Absent", nil)
	case errors.Is(err, attendance.ErrUnknownEmployee):
		NotFound(w, err.Error())

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
