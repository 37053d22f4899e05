package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/employee-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, date time.Time, marks attendance.AttendanceMap) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (emp_id, date, status, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (emp_id, date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
	`

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	batch := &pgx.Batch{}
	ids := make([]string, 0, len(marks))
	for empID, status := range marks {
		batch.Queue(query, empID, day, string(status))
		ids = append(ids, empID)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for _, empID := range ids {
		if _, err := results.Exec(); err != nil {
			if code, _ := pgErrorCode(err); code == codeForeignKeyViolation {
				return fmt.Errorf("%w: %s", attendance.ErrUnknownEmployee, empID)
			}
			return fmt.Errorf("failed to upsert attendance for %s: %w", empID, err)
		}
	}

	return results.Close()
}

// GetByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (attendance.AttendanceMap, error) {
	q := GetQuerier(ctx, r.db)

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	rows, err := q.Query(ctx, `SELECT emp_id, status FROM attendance WHERE date = $1`, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}
	defer rows.Close()

	marks := attendance.AttendanceMap{}
	for rows.Next() {
		var empID, status string
		if err := rows.Scan(&empID, &status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		marks[empID] = attendance.Status(status)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return marks, nil
}
