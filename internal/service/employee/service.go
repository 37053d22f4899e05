package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/employee-portal/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.EmployeeRecord) (employee.EmployeeRecord, error) {
	req.Normalize()
	if err := req.Validate(s.now()); err != nil {
		return employee.EmployeeRecord{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmpIDOrEmail(ctx, &req.EmpID, nil)
	if err != nil {
		return employee.EmployeeRecord{}, fmt.Errorf("failed to check employee ID existence: %w", err)
	}
	if exists {
		return employee.EmployeeRecord{}, employee.ErrEmployeeIDExists
	}

	exists, err = s.employeeRepo.ExistsByEmpIDOrEmail(ctx, nil, &req.Email)
	if err != nil {
		return employee.EmployeeRecord{}, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return employee.EmployeeRecord{}, employee.ErrEmailExists
	}

	created, err := s.employeeRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return employee.EmployeeRecord{}, err
	}

	slog.Info("employee created", "emp_id", created.EmpID, "dept", created.Department)
	return employee.FromEntity(created), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeRecord, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]employee.EmployeeRecord, 0, len(employees))
	for _, e := range employees {
		records = append(records, employee.FromEntity(e))
	}
	return records, nil
}
