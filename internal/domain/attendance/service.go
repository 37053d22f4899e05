package attendance

import "context"

type AttendanceService interface {
	// SubmitAttendance records today's attendance for every entry of the request
	SubmitAttendance(ctx context.Context, req SubmitAttendanceRequest) (SubmitAttendanceResponse, error)

	// GetAttendance returns the statuses recorded for a day (YYYY-MM-DD, default today)
	GetAttendance(ctx context.Context, date string) (DailyAttendanceResponse, error)
}
