package response

import "mecanica_workflow/internal/domain/entities"

// WorkflowStatsResponse mirrors the aggregate. Nil ratios serialize as
// absent fields, so "no completed work yet" is distinguishable from 0.
type WorkflowStatsResponse struct {
	TotalCompleted           int      `json:"total_completed"`
	TotalCancelled           int      `json:"total_cancelled"`
	TotalOpen                int      `json:"total_open"`
	CompletionRate           *float64 `json:"completion_rate,omitempty"`
	OnTimeCompletionRate     *float64 `json:"on_time_completion_rate,omitempty"`
	AverageCompletionMinutes *float64 `json:"average_completion_minutes,omitempty"`
}

func FromWorkflowStats(s entities.WorkflowStats) WorkflowStatsResponse {
	return WorkflowStatsResponse(s)
}
