package employee

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/employee-portal/internal/pkg/validator"
)

// Form field names, shared by the JSON wire format and the portal form.
const (
	FieldName        = "name"
	FieldEmpID       = "emp_id"
	FieldEmail       = "email"
	FieldPhoneNumber = "phonenum"
	FieldDepartment  = "dept"
	FieldDateOfJoin  = "doj"
	FieldRole        = "role"
)

// Fields lists every form field in display order.
var Fields = []string{FieldName, FieldEmpID, FieldEmail, FieldPhoneNumber, FieldDepartment, FieldDateOfJoin, FieldRole}

// EmployeeRecord is one employee's registration data as exchanged over HTTP.
type EmployeeRecord struct {
	Name        string     `json:"name"`
	EmpID       string     `json:"emp_id"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phonenum"`
	Department  Department `json:"dept"`
	DateOfJoin  string     `json:"doj"`
	Role        string     `json:"role"`
}

// ListEmployeesResponse is the body of GET /getEmployees.
type ListEmployeesResponse struct {
	Employees []EmployeeRecord `json:"employees"`
}

// Get returns the value of the named field.
func (r EmployeeRecord) Get(field string) (string, error) {
	switch field {
	case FieldName:
		return r.Name, nil
	case FieldEmpID:
		return r.EmpID, nil
	case FieldEmail:
		return r.Email, nil
	case FieldPhoneNumber:
		return r.PhoneNumber, nil
	case FieldDepartment:
		return string(r.Department), nil
	case FieldDateOfJoin:
		return r.DateOfJoin, nil
	case FieldRole:
		return r.Role, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
}

// Set assigns value to the named field.
func (r *EmployeeRecord) Set(field, value string) error {
	switch field {
	case FieldName:
		r.Name = value
	case FieldEmpID:
		r.EmpID = value
	case FieldEmail:
		r.Email = value
	case FieldPhoneNumber:
		r.PhoneNumber = value
	case FieldDepartment:
		r.Department = Department(value)
	case FieldDateOfJoin:
		r.DateOfJoin = value
	case FieldRole:
		r.Role = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// MissingFields returns the names of empty fields, in display order.
func (r EmployeeRecord) MissingFields() []string {
	var missing []string
	for _, field := range Fields {
		value, _ := r.Get(field)
		if validator.IsEmpty(value) {
			missing = append(missing, field)
		}
	}
	return missing
}

// IsZero reports whether every field is empty.
func (r EmployeeRecord) IsZero() bool {
	return r == EmployeeRecord{}
}

// Validate checks presence and format of every field. now bounds the date of joining.
func (r *EmployeeRecord) Validate(now time.Time) error {
	var errs validator.ValidationErrors

	for _, field := range r.MissingFields() {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " is required",
		})
	}
	if len(errs) > 0 {
		return errs
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   FieldEmail,
			Message: "email must be a valid email address",
		})
	}

	if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   FieldPhoneNumber,
			Message: "phonenum must be exactly 10 digits",
		})
	}

	if !r.Department.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   FieldDepartment,
			Message: "dept must be one of HR, Engineering, Marketing",
		})
	}

	if doj, ok := validator.IsValidDate(r.DateOfJoin); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   FieldDateOfJoin,
			Message: "doj must be in YYYY-MM-DD format",
		})
	} else if !validator.IsNotAfter(doj, now) {
		errs = append(errs, validator.ValidationError{
			Field:   FieldDateOfJoin,
			Message: "doj cannot be in the future",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Normalize trims surrounding whitespace and lowercases the email.
func (r *EmployeeRecord) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.EmpID = strings.TrimSpace(r.EmpID)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.Department = Department(strings.TrimSpace(string(r.Department)))
	r.DateOfJoin = strings.TrimSpace(r.DateOfJoin)
	r.Role = strings.TrimSpace(r.Role)
}

// ToEntity converts a validated record. The date of joining must already parse.
func (r EmployeeRecord) ToEntity() Employee {
	doj, _ := time.Parse(validator.DateLayout, r.DateOfJoin)
	return Employee{
		EmpID:       r.EmpID,
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Department:  r.Department,
		DateOfJoin:  doj,
		Role:        r.Role,
	}
}

func FromEntity(e Employee) EmployeeRecord {
	return EmployeeRecord{
		Name:        e.Name,
		EmpID:       e.EmpID,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		Department:  e.Department,
		DateOfJoin:  e.DateOfJoin.Format(validator.DateLayout),
		Role:        e.Role,
	}
}
