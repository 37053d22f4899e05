package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/cmlabs-hris/employee-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal/internal/domain/employee"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

const statusFieldPrefix = "status."

type PortalHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	SubmitEmployee(w http.ResponseWriter, r *http.Request)
	ResetEmployee(w http.ResponseWriter, r *http.Request)
	UpdateAttendance(w http.ResponseWriter, r *http.Request)
	ToggleStatistics(w http.ResponseWriter, r *http.Request)
}

type portalHandlerImpl struct {
	sessions *SessionStore
}

func NewPortalHandler(sessions *SessionStore) PortalHandler {
	return &portalHandlerImpl{sessions: sessions}
}

// Index handles GET /
func (h *portalHandlerImpl) Index(w http.ResponseWriter, r *http.Request) {
	page := h.sessions.Page(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pageTemplate.Execute(w, buildView(page)); err != nil {
		slog.Error("Failed to render page", "error", err)
	}
}

// SubmitEmployee handles POST /employees
func (h *portalHandlerImpl) SubmitEmployee(w http.ResponseWriter, r *http.Request) {
	page := h.sessions.Page(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	for _, field := range employee.Fields {
		if err := page.Registration.SetField(field, r.PostForm.Get(field)); err != nil {
			slog.Error("Failed to set form field", "field", field, "error", err)
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
	}

	if err := page.Registration.Submit(r.Context()); err != nil {
		slog.Debug("Employee registration not accepted", "error", err)
	}

	redirectHome(w, r)
}

// ResetEmployee handles POST /employees/reset
func (h *portalHandlerImpl) ResetEmployee(w http.ResponseWriter, r *http.Request) {
	h.sessions.Page(w, r).Registration.Reset()
	redirectHome(w, r)
}

// UpdateAttendance handles POST /attendance. Every posted status.<emp_id> value
// is recorded, or none is if any value is invalid; action=submit also sends the map.
func (h *portalHandlerImpl) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	page := h.sessions.Page(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	marks, err := parseStatusFields(r.PostForm)
	if err != nil {
		http.Error(w, "Invalid attendance status", http.StatusBadRequest)
		return
	}

	for empID, status := range marks {
		err := page.Attendance.Mark(empID, string(status))
		switch {
		case errors.Is(err, attendance.ErrEmployeeNotShown):
			slog.Warn("Ignoring attendance for employee not on the page", "emp_id", empID)
		case err != nil:
			slog.Error("Failed to mark attendance", "emp_id", empID, "error", err)
		}
	}

	if r.PostForm.Get("action") == "submit" {
		if err := page.Attendance.Submit(r.Context()); err != nil {
			slog.Debug("Attendance submission not accepted", "error", err)
		}
	}

	redirectHome(w, r)
}

// parseStatusFields collects the status.<emp_id> form values. The empty status
// is kept so the row can be cleared.
func parseStatusFields(form url.Values) (map[string]attendance.Status, error) {
	marks := make(map[string]attendance.Status)
	for key, values := range form {
		empID, ok := strings.CutPrefix(key, statusFieldPrefix)
		if !ok || len(values) == 0 {
			continue
		}
		status, err := attendance.ParseStatus(values[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", empID, err)
		}
		marks[empID] = status
	}
	return marks, nil
}

// ToggleStatistics handles POST /statistics/toggle
func (h *portalHandlerImpl) ToggleStatistics(w http.ResponseWriter, r *http.Request) {
	h.sessions.Page(w, r).Statistics.Toggle(r.Context())
	redirectHome(w, r)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
