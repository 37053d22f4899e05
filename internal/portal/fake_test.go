package portal

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/employee-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal/internal/domain/employee"
	"github.com/cmlabs-hris/employee-portal/internal/domain/statistics"
)

type fakeAPI struct {
	mu sync.Mutex

	employees    []employee.EmployeeRecord
	employeesErr error
	getCalls     int

	addMsg   string
	addErr   error
	added    []employee.EmployeeRecord
	addCalls int

	submitErr   error
	submitted   []attendance.AttendanceMap
	submitCalls int

	// stats is called with the 1-based call number.
	stats      func(call int) (*statistics.StatisticsResponse, error)
	statsCalls int
}

func (f *fakeAPI) GetEmployees(ctx context.Context) ([]employee.EmployeeRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	return f.employees, f.employeesErr
}

func (f *fakeAPI) AddEmployee(ctx context.Context, rec employee.EmployeeRecord) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCalls++
	if f.addErr != nil {
		return "", f.addErr
	}
	f.added = append(f.added, rec)
	return f.addMsg, nil
}

func (f *fakeAPI) SubmitAttendance(ctx context.Context, marks attendance.AttendanceMap) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitCalls++
	if f.submitErr != nil {
		return "", f.submitErr
	}
	f.submitted = append(f.submitted, marks)
	return "Attendance submitted successfully", nil
}

func (f *fakeAPI) GetStatistics(ctx context.Context) (*statistics.StatisticsResponse, error) {
	f.mu.Lock()
	f.statsCalls++
	call := f.statsCalls
	stats := f.stats
	f.mu.Unlock()

	if stats == nil {
		return &statistics.StatisticsResponse{}, nil
	}
	return stats(call)
}

func (f *fakeAPI) calls() (get, add, submit, stats int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getCalls, f.addCalls, f.submitCalls, f.statsCalls
}

func sampleEmployee() employee.EmployeeRecord {
	return employee.EmployeeRecord{
		Name:        "A",
		EmpID:       "1",
		Email:       "a@x.com",
		PhoneNumber: "1234567890",
		Department:  employee.DepartmentHR,
		DateOfJoin:  "2024-01-01",
		Role:        "Dev",
	}
}

func fillForm(f *RegistrationForm, rec employee.EmployeeRecord) error {
	for _, field := range employee.Fields {
		value, err := rec.Get(field)
		if err != nil {
			return err
		}
		if err := f.SetField(field, value); err != nil {
			return err
		}
	}
	return nil
}
