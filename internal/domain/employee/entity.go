package employee

import "time"

type Employee struct {
	EmpID       string
	Name        string
	Email       string
	PhoneNumber string
	Department  Department
	DateOfJoin  time.Time
	Role        string
	CreatedAt   time.Time
}

type Department string

const (
	DepartmentHR          Department = "HR"
	DepartmentEngineering Department = "Engineering"
	DepartmentMarketing   Department = "Marketing"
)

// Departments lists the selectable departments in display order.
var Departments = []Department{DepartmentHR, DepartmentEngineering, DepartmentMarketing}

func (d Department) IsValid() bool {
	switch d {
	case DepartmentHR, DepartmentEngineering, DepartmentMarketing:
		return true
	}
	return false
}
