package statistics

import "context"

type StatisticsRepository interface {
	// CountByRole returns employee counts grouped by role
	CountByRole(ctx context.Context) ([]StatisticCount, error)

	// CountByDepartment returns employee counts grouped by department
	CountByDepartment(ctx context.Context) ([]StatisticCount, error)
}
