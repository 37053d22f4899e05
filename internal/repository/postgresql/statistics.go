package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/employee-portal/internal/domain/statistics"
	"github.com/cmlabs-hris/employee-portal/internal/pkg/database"
)

type statisticsRepositoryImpl struct {
	db *database.DB
}

func NewStatisticsRepository(db *database.DB) statistics.StatisticsRepository {
	return &statisticsRepositoryImpl{db: db}
}

// CountByRole returns employee counts per role, largest group first
func (r *statisticsRepositoryImpl) CountByRole(ctx context.Context) ([]statistics.StatisticCount, error) {
	query := `
		SELECT role, COUNT(*) AS count
		FROM employees
		GROUP BY role
		ORDER BY count DESC, role
	`
	counts, err := r.countBy(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by role: %w", err)
	}
	return counts, nil
}

// CountByDepartment returns employee counts per department, largest group first
func (r *statisticsRepositoryImpl) CountByDepartment(ctx context.Context) ([]statistics.StatisticCount, error) {
	query := `
		SELECT dept, COUNT(*) AS count
		FROM employees
		GROUP BY dept
		ORDER BY count DESC, dept
	`
	counts, err := r.countBy(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by department: %w", err)
	}
	return counts, nil
}

func (r *statisticsRepositoryImpl) countBy(ctx context.Context, query string) ([]statistics.StatisticCount, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []statistics.StatisticCount{}
	for rows.Next() {
		var c statistics.StatisticCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
