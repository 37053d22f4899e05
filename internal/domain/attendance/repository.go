package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert stores every entry of marks for date, overwriting earlier submissions
	Upsert(ctx context.Context, date time.Time, marks AttendanceMap) error

	// GetByDate returns the statuses recorded for date
	GetByDate(ctx context.Context, date time.Time) (AttendanceMap, error)
}
