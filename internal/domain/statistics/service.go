package statistics

import "context"

type StatisticsService interface {
	// GetStatistics returns role and department distributions
	GetStatistics(ctx context.Context) (*StatisticsResponse, error)
}
