package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ExistsByEmpIDOrEmail(ctx context.Context, empID, email *string) (bool, error)
}
