package portal

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/cmlabs-hris/employee-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal/internal/domain/employee"
	"github.com/cmlabs-hris/employee-portal/internal/pkg/apiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticRoster []employee.EmployeeRecord

func (r *staticRoster) Employees() []employee.EmployeeRecord {
	return append([]employee.EmployeeRecord(nil), *r...)
}

func newRoster(ids ...string) *staticRoster {
	r := staticRoster{}
	for _, id := range ids {
		r = append(r, employee.EmployeeRecord{Name: "Employee " + id, EmpID: id})
	}
	return &r
}

func TestAttendanceTracker_MarkAndRows(t *testing.T) {
	tracker := NewAttendanceTracker(&fakeAPI{}, newRoster("1", "2"))

	require.NoError(t, tracker.Mark("1", "Present"))
	require.NoError(t, tracker.Mark("2", "Absent"))
	require.NoError(t, tracker.Mark("2", ""))

	assert.Equal(t, []AttendanceRow{
		{Name: "Employee 1", EmpID: "1", Status: attendance.StatusPresent},
		{Name: "Employee 2", EmpID: "2", Status: attendance.StatusUnset},
	}, tracker.Rows())
	assert.Equal(t, attendance.AttendanceMap{"1": attendance.StatusPresent}, tracker.Marks())
}

func TestAttendanceTracker_MarkRejects(t *testing.T) {
	tracker := NewAttendanceTracker(&fakeAPI{}, newRoster("1"))

	assert.ErrorIs(t, tracker.Mark("1", "Late"), attendance.ErrInvalidStatus)
	assert.ErrorIs(t, tracker.Mark("9", "Present"), attendance.ErrEmployeeNotShown)
	assert.Empty(t, tracker.Marks())
}

func TestAttendanceTracker_SubmitEmpty(t *testing.T) {
	api := &fakeAPI{}
	tracker := NewAttendanceTracker(api, newRoster("1"))

	err := tracker.Submit(context.Background())

	assert.ErrorIs(t, err, attendance.ErrEmptyAttendance)
	assert.Equal(t, "Please mark attendance before submitting!", tracker.TakeAlert())
	_, _, submit, _ := api.calls()
	assert.Zero(t, submit)
}

func TestAttendanceTracker_SubmitSuccess(t *testing.T) {
	api := &fakeAPI{}
	tracker := NewAttendanceTracker(api, newRoster("1", "2"))
	require.NoError(t, tracker.Mark("1", "Present"))
	require.NoError(t, tracker.Mark("2", "Absent"))

	require.NoError(t, tracker.Submit(context.Background()))

	assert.Equal(t, "Attendance submitted successfully!", tracker.TakeAlert())
	assert.Empty(t, tracker.TakeAlert())
	require.Len(t, api.submitted, 1)
	assert.Equal(t, attendance.AttendanceMap{"1": attendance.StatusPresent, "2": attendance.StatusAbsent}, api.submitted[0])
	// selections survive a successful submit
	assert.Equal(t, api.submitted[0], tracker.Marks())
}

func TestAttendanceTracker_SubmitFailure(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"server message", &apiclient.StatusError{StatusCode: http.StatusNotFound, Message: "employee not found"}, "Error submitting attendance: employee not found"},
		{"network", fmt.Errorf("%w: refused", apiclient.ErrNetwork), "Error submitting attendance!"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tracker := NewAttendanceTracker(&fakeAPI{submitErr: c.err}, newRoster("1"))
			require.NoError(t, tracker.Mark("1", "Present"))

			assert.Error(t, tracker.Submit(context.Background()))
			assert.Equal(t, c.want, tracker.TakeAlert())
			assert.Equal(t, attendance.AttendanceMap{"1": attendance.StatusPresent}, tracker.Marks())
		})
	}
}

func TestAttendanceTracker_SubmitPrunesEmployeesOffRoster(t *testing.T) {
	api := &fakeAPI{}
	roster := newRoster("1", "2")
	tracker := NewAttendanceTracker(api, roster)
	require.NoError(t, tracker.Mark("1", "Present"))
	require.NoError(t, tracker.Mark("2", "Absent"))

	*roster = (*roster)[:1]
	require.NoError(t, tracker.Submit(context.Background()))

	require.Len(t, api.submitted, 1)
	assert.Equal(t, attendance.AttendanceMap{"1": attendance.StatusPresent}, api.submitted[0])
}

func TestAttendanceTracker_SubmitOnlyStaleEntries(t *testing.T) {
	api := &fakeAPI{}
	roster := newRoster("1")
	tracker := NewAttendanceTracker(api, roster)
	require.NoError(t, tracker.Mark("1", "Present"))

	*roster = staticRoster{}
	assert.ErrorIs(t, tracker.Submit(context.Background()), attendance.ErrEmptyAttendance)
	assert.Equal(t, "Please mark attendance before submitting!", tracker.TakeAlert())
	_, _, submit, _ := api.calls()
	assert.Zero(t, submit)
}
