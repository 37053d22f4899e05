package statistics

import (
	"context"

	"github.com/cmlabs-hris/employee-portal/internal/domain/statistics"
	"golang.org/x/sync/errgroup"
)

type StatisticsServiceImpl struct {
	statistics.StatisticsRepository
}

func NewStatisticsService(repo statistics.StatisticsRepository) statistics.StatisticsService {
	return &StatisticsServiceImpl{
		StatisticsRepository: repo,
	}
}

// GetStatistics runs the role and department aggregates in parallel
func (s *StatisticsServiceImpl) GetStatistics(ctx context.Context) (*statistics.StatisticsResponse, error) {
	var (
		roles []statistics.StatisticCount
		depts []statistics.StatisticCount
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		roles, err = s.CountByRole(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		depts, err = s.CountByDepartment(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &statistics.StatisticsResponse{
		Roles:       make([]statistics.RoleCount, 0, len(roles)),
		Departments: make([]statistics.DeptCount, 0, len(depts)),
	}
	for _, r := range roles {
		resp.Roles = append(resp.Roles, statistics.RoleCount{Role: r.Name, Count: statistics.Count(r.Count)})
	}
	for _, d := range depts {
		resp.Departments = append(resp.Departments, statistics.DeptCount{Dept: d.Name, Count: statistics.Count(d.Count)})
	}

	return resp, nil
}
