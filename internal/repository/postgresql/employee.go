package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/employee-portal/internal/domain/employee"
	"github.com/cmlabs-hris/employee-portal/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (emp_id, name, email, phonenum, dept, doj, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING emp_id, name, email, phonenum, dept, doj, role, created_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.EmpID, newEmployee.Name, newEmployee.Email, newEmployee.PhoneNumber,
		newEmployee.Department, newEmployee.DateOfJoin, newEmployee.Role,
	).Scan(
		&created.EmpID, &created.Name, &created.Email, &created.PhoneNumber,
		&created.Department, &created.DateOfJoin, &created.Role, &created.CreatedAt,
	)
	if err != nil {
		if code, constraint := pgErrorCode(err); code == codeUniqueViolation {
			if strings.Contains(constraint, "email") {
				return employee.Employee{}, employee.ErrEmailExists
			}
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT emp_id, name, email, phonenum, dept, doj, role, created_at
		FROM employees
		ORDER BY created_at, emp_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.EmpID, &emp.Name, &emp.Email, &emp.PhoneNumber,
			&emp.Department, &emp.DateOfJoin, &emp.Role, &emp.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// ExistsByEmpIDOrEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmpIDOrEmail(ctx context.Context, empID, email *string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var query string
	var arg interface{}

	switch {
	case empID != nil:
		query = `SELECT EXISTS(SELECT 1 FROM employees WHERE emp_id = $1)`
		arg = *empID
	case email != nil:
		query = `SELECT EXISTS(SELECT 1 FROM employees WHERE lower(email) = lower($1))`
		arg = *email
	default:
		return false, fmt.Errorf("either empID or email must be provided")
	}

	var exists bool
	if err := q.QueryRow(ctx, query, arg).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}
	return exists, nil
}
