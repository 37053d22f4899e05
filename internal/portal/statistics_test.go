package portal

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cmlabs-hris/employee-portal/internal/domain/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsResponse(role string, n statistics.Count) *statistics.StatisticsResponse {
	return &statistics.StatisticsResponse{
		Roles:       []statistics.RoleCount{{Role: role, Count: n}},
		Departments: []statistics.DeptCount{{Dept: "HR", Count: n}},
	}
}

func TestStatisticsPanel_FetchesOnShowOnly(t *testing.T) {
	api := &fakeAPI{stats: func(int) (*statistics.StatisticsResponse, error) {
		return statsResponse("Dev", 5), nil
	}}
	panel := NewStatisticsPanel(api)
	assert.False(t, panel.Visible())

	panel.Toggle(context.Background())
	assert.True(t, panel.Visible())
	panel.Toggle(context.Background())
	assert.False(t, panel.Visible())
	panel.Toggle(context.Background())

	_, _, _, stats := api.calls()
	assert.Equal(t, 2, stats)

	roles, depts := panel.Charts()
	require.Len(t, roles.Slices, 1)
	assert.Equal(t, "Dev: 5", roles.Slices[0].Label)
	assert.Equal(t, int64(5), depts.Total)
}

func TestStatisticsPanel_ErrorKeepsPreviousData(t *testing.T) {
	api := &fakeAPI{stats: func(call int) (*statistics.StatisticsResponse, error) {
		if call == 1 {
			return statsResponse("Dev", 3), nil
		}
		return nil, errors.New("boom")
	}}
	panel := NewStatisticsPanel(api)

	panel.Toggle(context.Background())
	panel.Toggle(context.Background())
	panel.Toggle(context.Background())

	assert.Equal(t, "Error fetching statistics", panel.ErrorMessage())
	roles, _ := panel.Charts()
	require.Len(t, roles.Slices, 1)
	assert.Equal(t, int64(3), roles.Slices[0].Value)
}

func TestStatisticsPanel_SuccessClearsError(t *testing.T) {
	api := &fakeAPI{stats: func(call int) (*statistics.StatisticsResponse, error) {
		if call == 1 {
			return nil, errors.New("boom")
		}
		return statsResponse("Dev", 1), nil
	}}
	panel := NewStatisticsPanel(api)

	panel.Toggle(context.Background())
	require.NotEmpty(t, panel.ErrorMessage())
	panel.Toggle(context.Background())
	panel.Toggle(context.Background())

	assert.Empty(t, panel.ErrorMessage())
}

func TestStatisticsPanel_LatestFetchWins(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	api := &fakeAPI{stats: func(call int) (*statistics.StatisticsResponse, error) {
		if call == 1 {
			close(started)
			<-release
			return statsResponse("Old", 1), nil
		}
		return statsResponse("New", 2), nil
	}}
	panel := NewStatisticsPanel(api)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		panel.Toggle(context.Background())
	}()
	<-started

	panel.Toggle(context.Background())
	panel.Toggle(context.Background())
	close(release)
	wg.Wait()

	assert.True(t, panel.Visible())
	roles, _ := panel.Charts()
	require.Len(t, roles.Slices, 1)
	assert.Equal(t, "New", roles.Slices[0].Name)
}
