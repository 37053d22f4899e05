package portal

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/employee-portal/internal/domain/statistics"
)

const msgStatisticsFailed = "Error fetching statistics"

// StatisticsPanel shows role and department distributions on demand.
//
// Every fetch takes a new generation number; a result is applied only if no
// newer fetch has started meanwhile.
type StatisticsPanel struct {
	api StatisticsAPI

	mu         sync.Mutex
	visible    bool
	generation uint64
	roles      []statistics.StatisticCount
	depts      []statistics.StatisticCount
	errMsg     string
}

func NewStatisticsPanel(api StatisticsAPI) *StatisticsPanel {
	return &StatisticsPanel{api: api}
}

// Toggle flips visibility. Becoming visible fetches fresh counts; hiding never fetches.
func (p *StatisticsPanel) Toggle(ctx context.Context) {
	p.mu.Lock()
	p.visible = !p.visible
	if !p.visible {
		p.mu.Unlock()
		return
	}
	p.generation++
	gen := p.generation
	p.mu.Unlock()

	p.fetch(ctx, gen)
}

func (p *StatisticsPanel) fetch(ctx context.Context, gen uint64) {
	resp, err := p.api.GetStatistics(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.generation {
		slog.Debug("discarding stale statistics", "generation", gen, "latest", p.generation)
		return
	}
	if err != nil {
		slog.Error("failed to fetch statistics", "error", err)
		p.errMsg = msgStatisticsFailed
		return
	}

	p.roles = resp.RoleCounts()
	p.depts = resp.DepartmentCounts()
	p.errMsg = ""
}

func (p *StatisticsPanel) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

func (p *StatisticsPanel) ErrorMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// Charts returns the role and department pies built from the last applied fetch.
func (p *StatisticsPanel) Charts() (roles, depts PieChart) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return BuildPieChart("Roles Distribution", p.roles), BuildPieChart("Departments Distribution", p.depts)
}
