package portal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/employee-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal/internal/domain/employee"
)

const (
	alertNothingMarked    = "Please mark attendance before submitting!"
	alertSubmitted        = "Attendance submitted successfully!"
	alertSubmitFailed     = "Error submitting attendance!"
	alertSubmitFailedWith = "Error submitting attendance: %s"
)

// Roster supplies the employees shown in the attendance table.
type Roster interface {
	Employees() []employee.EmployeeRecord
}

// AttendanceRow is one line of the attendance table.
type AttendanceRow struct {
	Name   string
	EmpID  string
	Status attendance.Status
}

// AttendanceTracker collects a status per employee and submits them together.
type AttendanceTracker struct {
	api    AttendanceAPI
	roster Roster

	mu    sync.Mutex
	marks attendance.AttendanceMap
	alert string
}

func NewAttendanceTracker(api AttendanceAPI, roster Roster) *AttendanceTracker {
	return &AttendanceTracker{
		api:    api,
		roster: roster,
		marks:  attendance.AttendanceMap{},
	}
}

// Mark sets the status of one employee. The empty choice clears the entry.
func (t *AttendanceTracker) Mark(empID, choice string) error {
	status, err := attendance.ParseStatus(choice)
	if err != nil {
		return err
	}
	if _, ok := rosterIDs(t.roster)[empID]; !ok {
		return fmt.Errorf("%w: %s", attendance.ErrEmployeeNotShown, empID)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if status == attendance.StatusUnset {
		delete(t.marks, empID)
		return nil
	}
	t.marks[empID] = status
	return nil
}

// Rows returns the table in roster order with each employee's current choice.
func (t *AttendanceTracker) Rows() []AttendanceRow {
	employees := t.roster.Employees()

	t.mu.Lock()
	defer t.mu.Unlock()

	rows := make([]AttendanceRow, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, AttendanceRow{Name: e.Name, EmpID: e.EmpID, Status: t.marks[e.EmpID]})
	}
	return rows
}

// Marks returns a copy of the current attendance map.
func (t *AttendanceTracker) Marks() attendance.AttendanceMap {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.marks.Clone()
}

// Submit sends the whole map in one request and raises an alert with the
// outcome. Entries for employees no longer on the roster are dropped first.
// Nothing is sent when the map is empty. The map is kept after success.
func (t *AttendanceTracker) Submit(ctx context.Context) error {
	ids := rosterIDs(t.roster)

	t.mu.Lock()
	if removed := t.marks.Retain(ids); len(removed) > 0 {
		slog.Info("dropped attendance for employees not on the roster", "emp_ids", removed)
	}
	if len(t.marks) == 0 {
		t.alert = alertNothingMarked
		t.mu.Unlock()
		return attendance.ErrEmptyAttendance
	}
	marks := t.marks.Clone()
	t.mu.Unlock()

	_, err := t.api.SubmitAttendance(ctx, marks)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil {
		slog.Error("failed to submit attendance", "entries", len(marks), "error", err)
		if msg, ok := serverMessage(err); ok {
			t.alert = fmt.Sprintf(alertSubmitFailedWith, msg)
		} else {
			t.alert = alertSubmitFailed
		}
		return err
	}

	t.alert = alertSubmitted
	return nil
}

// TakeAlert returns the pending alert and clears it.
func (t *AttendanceTracker) TakeAlert() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	alert := t.alert
	t.alert = ""
	return alert
}

func rosterIDs(r Roster) map[string]struct{} {
	employees := r.Employees()
	ids := make(map[string]struct{}, len(employees))
	for _, e := range employees {
		ids[e.EmpID] = struct{}{}
	}
	return ids
}
