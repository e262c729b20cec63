package api

import (
	"log/slog"
	"net/http"

	"github.com/mariana977/taskdesk-api/internal/api/shared"
	"github.com/mariana977/taskdesk-api/internal/service"
)

// SummaryResponse represents the response data for the summary endpoint.
type SummaryResponse struct {
	TotalTasks   int            `json:"total_tasks"`
	ByStatus     map[string]int `json:"by_status"`
	OverdueTasks int            `json:"overdue_tasks"`
}

// ProductivityResponse represents the response data for the productivity
// endpoint.
type ProductivityResponse struct {
	CompletedTasks   int    `json:"completed_tasks"`
	WeekProductivity string `json:"week_productivity"`
}

// StatsHandler handles statistics HTTP requests
type StatsHandler struct {
	statsService service.StatsService
	logger       *slog.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService service.StatsService, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StatsHandler")
	}

	return &StatsHandler{
		statsService: statsService,
		logger:       logger.With(slog.String("component", "stats_handler")),
	}
}

// GetSummary handles GET /stats/summary requests
func (h *StatsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.statsService.Summary(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	byStatus := make(map[string]int, len(summary.ByStatus))
	for status, count := range summary.ByStatus {
		byStatus[string(status)] = count
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SummaryResponse{
		TotalTasks:   summary.TotalTasks,
		ByStatus:     byStatus,
		OverdueTasks: summary.OverdueTasks,
	})
}

// GetProductivity handles GET /stats/productivity requests
func (h *StatsHandler) GetProductivity(w http.ResponseWriter, r *http.Request) {
	report, err := h.statsService.Productivity(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProductivityResponse{
		CompletedTasks:   report.CompletedTasks,
		WeekProductivity: report.WeekProductivity,
	})
}
