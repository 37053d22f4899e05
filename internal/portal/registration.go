package portal

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/employee-portal/internal/domain/employee"
	"github.com/cmlabs-hris/employee-portal/internal/pkg/validator"
)

const (
	msgFieldsRequired   = "All fields are required"
	msgConnectFailed    = "Error connecting to server"
	msgLoadFailed       = "Failed to load employees."
	msgLoadUnreachable  = "Error fetching employees from server."
	msgRegistrationFail = "Failed to add employee"
)

// RegistrationForm owns the employee form and the list of known employees.
type RegistrationForm struct {
	api EmployeeAPI

	mu         sync.Mutex
	form       employee.EmployeeRecord
	errMsg     string
	successMsg string
	employees  []employee.EmployeeRecord
}

func NewRegistrationForm(api EmployeeAPI) *RegistrationForm {
	return &RegistrationForm{api: api}
}

// Mount loads the employee list once. Failures become an inline error and the
// form stays usable.
func (f *RegistrationForm) Mount(ctx context.Context) {
	list, err := f.api.GetEmployees(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		slog.Error("failed to load employees", "error", err)
		if _, ok := serverMessage(err); ok {
			f.errMsg = msgLoadFailed
		} else {
			f.errMsg = msgLoadUnreachable
		}
		return
	}
	f.employees = append([]employee.EmployeeRecord(nil), list...)
}

// SetField updates one form field by its wire name.
func (f *RegistrationForm) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form.Set(name, value)
}

// Submit sends the form. Empty fields fail locally with validator.ValidationErrors
// and no request is made. On 201 the form is cleared and the submitted record
// appended to the list.
func (f *RegistrationForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	f.errMsg = ""
	f.successMsg = ""
	rec := f.form
	if missing := rec.MissingFields(); len(missing) > 0 {
		f.errMsg = msgFieldsRequired
		f.mu.Unlock()
		errs := make(validator.ValidationErrors, 0, len(missing))
		for _, field := range missing {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " is required"})
		}
		return errs
	}
	f.mu.Unlock()

	msg, err := f.api.AddEmployee(ctx, rec)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		if serverMsg, ok := serverMessage(err); ok {
			f.errMsg = serverMsg
			if f.errMsg == "" {
				f.errMsg = msgRegistrationFail
			}
		} else {
			slog.Error("failed to submit employee", "emp_id", rec.EmpID, "error", err)
			f.errMsg = msgConnectFailed
		}
		return err
	}

	f.successMsg = msg
	f.form = employee.EmployeeRecord{}
	f.employees = append(f.employees, rec)
	return nil
}

// Reset clears all fields and messages without a network call.
func (f *RegistrationForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form = employee.EmployeeRecord{}
	f.errMsg = ""
	f.successMsg = ""
}

// Form returns the current field values.
func (f *RegistrationForm) Form() employee.EmployeeRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

func (f *RegistrationForm) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

func (f *RegistrationForm) SuccessMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.successMsg
}

// Employees returns a snapshot of the known employees in registration order.
func (f *RegistrationForm) Employees() []employee.EmployeeRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]employee.EmployeeRecord(nil), f.employees...)
}
