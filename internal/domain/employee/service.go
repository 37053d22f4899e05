package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee validates and stores a new employee record
	CreateEmployee(ctx context.Context, req EmployeeRecord) (EmployeeRecord, error)

	// ListEmployees returns every registered employee, oldest first
	ListEmployees(ctx context.Context) ([]EmployeeRecord, error)
}
