package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/employee-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal/internal/pkg/validator"
)

// TxFunc runs fn inside a single database transaction.
type TxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

type AttendanceServiceImpl struct {
	withTx         TxFunc
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewAttendanceService(withTx TxFunc, attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		withTx:         withTx,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// SubmitAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SubmitAttendance(ctx context.Context, req attendance.SubmitAttendanceRequest) (attendance.SubmitAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SubmitAttendanceResponse{}, err
	}

	today := s.now()

	// All entries are stored or none are
	err := s.withTx(ctx, func(ctx context.Context) error {
		return s.attendanceRepo.Upsert(ctx, today, req.Attendance)
	})
	if err != nil {
		return attendance.SubmitAttendanceResponse{}, err
	}

	slog.Info("attendance submitted", "date", today.Format(validator.DateLayout), "entries", len(req.Attendance))

	return attendance.SubmitAttendanceResponse{
		Date:     today.Format(validator.DateLayout),
		Recorded: len(req.Attendance),
	}, nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, date string) (attendance.DailyAttendanceResponse, error) {
	day := s.now()
	if date != "" {
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			return attendance.DailyAttendanceResponse{}, validator.ValidationErrors{{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			}}
		}
		day = parsed
	}

	marks, err := s.attendanceRepo.GetByDate(ctx, day)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	return attendance.DailyAttendanceResponse{
		Date:       day.Format(validator.DateLayout),
		Attendance: marks,
	}, nil
}
