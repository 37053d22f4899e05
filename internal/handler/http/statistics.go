package http

import (
	"net/http"

	"github.com/cmlabs-hris/employee-portal/internal/domain/statistics"
	"github.com/cmlabs-hris/employee-portal/internal/handler/http/response"
)

type StatisticsHandler interface {
	// GetStatistics returns role and department distributions
	GetStatistics(w http.ResponseWriter, r *http.Request)
}

type statisticsHandlerImpl struct {
	statisticsService statistics.StatisticsService
}

func NewStatisticsHandler(statisticsService statistics.StatisticsService) StatisticsHandler {
	return &statisticsHandlerImpl{statisticsService: statisticsService}
}

// GetStatistics handles GET /employees/statistics
func (h *statisticsHandlerImpl) GetStatistics(w http.ResponseWriter, r *http.Request) {
	result, err := h.statisticsService.GetStatistics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}
