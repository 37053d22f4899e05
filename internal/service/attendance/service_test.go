package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/employee-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryAttendanceRepo struct {
	days      map[string]attendance.AttendanceMap
	upsertErr error
}

func (m *memoryAttendanceRepo) Upsert(ctx context.Context, date time.Time, marks attendance.AttendanceMap) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	key := date.Format(validator.DateLayout)
	if m.days[key] == nil {
		m.days[key] = attendance.AttendanceMap{}
	}
	for k, v := range marks {
		m.days[key][k] = v
	}
	return nil
}

func (m *memoryAttendanceRepo) GetByDate(ctx context.Context, date time.Time) (attendance.AttendanceMap, error) {
	if marks, ok := m.days[date.Format(validator.DateLayout)]; ok {
		return marks, nil
	}
	return attendance.AttendanceMap{}, nil
}

func passthroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(repo *memoryAttendanceRepo) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		withTx:         passthroughTx,
		attendanceRepo: repo,
		now:            func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) },
	}
}

func TestAttendanceService_SubmitAttendance(t *testing.T) {
	repo := &memoryAttendanceRepo{days: map[string]attendance.AttendanceMap{}}
	svc := newTestService(repo)
	ctx := context.Background()

	resp, err := svc.SubmitAttendance(ctx, attendance.SubmitAttendanceRequest{
		Attendance: attendance.AttendanceMap{"1": attendance.StatusPresent, "2": attendance.StatusAbsent},
	})

	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", resp.Date)
	assert.Equal(t, 2, resp.Recorded)

	day, err := svc.GetAttendance(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, attendance.AttendanceMap{"1": attendance.StatusPresent, "2": attendance.StatusAbsent}, day.Attendance)
}

func TestAttendanceService_SubmitAttendance_Empty(t *testing.T) {
	repo := &memoryAttendanceRepo{days: map[string]attendance.AttendanceMap{}}
	svc := newTestService(repo)

	_, err := svc.SubmitAttendance(context.Background(), attendance.SubmitAttendanceRequest{})

	assert.ErrorIs(t, err, attendance.ErrEmptyAttendance)
	assert.Empty(t, repo.days)
}

func TestAttendanceService_SubmitAttendance_RepoError(t *testing.T) {
	repo := &memoryAttendanceRepo{days: map[string]attendance.AttendanceMap{}, upsertErr: attendance.ErrUnknownEmployee}
	svc := newTestService(repo)

	_, err := svc.SubmitAttendance(context.Background(), attendance.SubmitAttendanceRequest{
		Attendance: attendance.AttendanceMap{"ghost": attendance.StatusPresent},
	})

	assert.True(t, errors.Is(err, attendance.ErrUnknownEmployee))
}

func TestAttendanceService_GetAttendance_BadDate(t *testing.T) {
	svc := newTestService(&memoryAttendanceRepo{days: map[string]attendance.AttendanceMap{}})

	_, err := svc.GetAttendance(context.Background(), "June 1st")

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}
