package portal

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/employee-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal/internal/domain/employee"
	"github.com/cmlabs-hris/employee-portal/internal/domain/statistics"
	"github.com/cmlabs-hris/employee-portal/internal/pkg/apiclient"
)

// EmployeeAPI is the part of the REST API the registration form uses.
type EmployeeAPI interface {
	GetEmployees(ctx context.Context) ([]employee.EmployeeRecord, error)
	AddEmployee(ctx context.Context, rec employee.EmployeeRecord) (string, error)
}

// AttendanceAPI is the part of the REST API the attendance tracker uses.
type AttendanceAPI interface {
	SubmitAttendance(ctx context.Context, marks attendance.AttendanceMap) (string, error)
}

// StatisticsAPI is the part of the REST API the statistics panel uses.
type StatisticsAPI interface {
	GetStatistics(ctx context.Context) (*statistics.StatisticsResponse, error)
}

// API is everything a Page needs. *apiclient.Client implements it.
type API interface {
	EmployeeAPI
	AttendanceAPI
	StatisticsAPI
}

var _ API = (*apiclient.Client)(nil)

// serverMessage extracts the message the server attached to a failed request.
func serverMessage(err error) (string, bool) {
	var statusErr *apiclient.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Message, true
	}
	return "", false
}
