package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/employee-portal/internal/domain/employee"
	"github.com/cmlabs-hris/employee-portal/internal/handler/http/response"
)

type EmployeeHandler interface {
	AddEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployees(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// AddEmployee handles POST /addEmployee
func (h *employeeHandlerImpl) AddEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.EmployeeRecord
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode employee", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee added successfully", result)
}

// GetEmployees handles GET /getEmployees
func (h *employeeHandlerImpl) GetEmployees(w http.ResponseWriter, r *http.Request) {
	records, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, employee.ListEmployeesResponse{Employees: records})
}
