package web

import (
	"github.com/cmlabs-hris/employee-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal/internal/domain/employee"
	"github.com/cmlabs-hris/employee-portal/internal/portal"
)

type fieldView struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Placeholder string
	Options     []string
}

type pageView struct {
	Fields     []fieldView
	FormError  string
	FormNotice string
	Employees  []employee.EmployeeRecord

	StatsVisible bool
	StatsError   string
	Charts       []portal.PieChart
	ChartSize    int
	ChartCenter  int
	ChartRadius  int

	Rows    []portal.AttendanceRow
	Choices []attendance.Status
	Alert   string
}

var fieldLabels = map[string]string{
	employee.FieldName:        "Name",
	employee.FieldEmpID:       "Employee ID",
	employee.FieldEmail:       "Email",
	employee.FieldPhoneNumber: "Phone Number",
	employee.FieldDepartment:  "Department",
	employee.FieldDateOfJoin:  "Date of Joining",
	employee.FieldRole:        "Role",
}

func buildView(page *portal.Page) pageView {
	form := page.Registration.Form()

	fields := make([]fieldView, 0, len(employee.Fields))
	for _, name := range employee.Fields {
		value, _ := form.Get(name)
		f := fieldView{Name: name, Label: fieldLabels[name], Type: "text", Value: value}
		switch name {
		case employee.FieldEmail:
			f.Type = "email"
		case employee.FieldPhoneNumber:
			f.Type = "tel"
			f.Placeholder = "10 digits"
		case employee.FieldDateOfJoin:
			f.Type = "date"
		case employee.FieldDepartment:
			f.Type = "select"
			for _, d := range employee.Departments {
				f.Options = append(f.Options, string(d))
			}
		}
		fields = append(fields, f)
	}

	roles, depts := page.Statistics.Charts()

	return pageView{
		Fields:       fields,
		FormError:    page.Registration.ErrorMessage(),
		FormNotice:   page.Registration.SuccessMessage(),
		Employees:    page.Registration.Employees(),
		StatsVisible: page.Statistics.Visible(),
		StatsError:   page.Statistics.ErrorMessage(),
		Charts:       []portal.PieChart{roles, depts},
		ChartSize:    portal.ChartSize,
		ChartCenter:  portal.ChartCenter,
		ChartRadius:  portal.ChartRadius,
		Rows:         page.Attendance.Rows(),
		Choices:      attendance.Choices,
		Alert:        page.Attendance.TakeAlert(),
	}
}
