package entities

// StatsPolicy controls whether a cancelled authorization's tracked
// in_progress time counts toward the completion-time average. Off by
// default; a cancelled job never completed.
type StatsPolicy struct {
	IncludeCancelledTime bool
}

// WorkflowStats is derived on demand from authoritative time-tracking data.
// Ratios are nil (not zero) when their denominator is empty, so "no data"
// is distinguishable from "0%".
type WorkflowStats struct {
	TotalCompleted int `json:"total_completed"`
	TotalCancelled int `json:"total_cancelled"`
	TotalOpen      int `json:"total_open"`

	CompletionRate           *float64 `json:"completion_rate,omitempty"`
	OnTimeCompletionRate     *float64 `json:"on_time_completion_rate,omitempty"`
	AverageCompletionMinutes *float64 `json:"average_completion_minutes,omitempty"`
}

// ComputeWorkflowStats aggregates a mechanic's or shop's authorizations.
//
//   - CompletionRate = completed / (completed + cancelled); items still in
//     flight have no terminal outcome and are excluded from the denominator.
//   - OnTimeCompletionRate counts only completed items that carry an
//     estimated duration to compare against.
//   - AverageCompletionMinutes is the mean actual duration over completed
//     items (plus cancelled tracked time when the policy opts in).
func ComputeWorkflowStats(items []WorkAuthorization, policy StatsPolicy) WorkflowStats {
	var stats WorkflowStats

	onTimeCount := 0
	onTimeEligible := 0
	durationSum := 0.0
	durationCount := 0

	for _, w := range items {
		switch w.WorkflowStatus {
		case WorkflowStatusCompleted:
			stats.TotalCompleted++
			if w.ActualDurationMinutes != nil {
				durationSum += *w.ActualDurationMinutes
				durationCount++
			}
			if onTime, ok := w.CompletedOnTime(); ok {
				onTimeEligible++
				if onTime {
					onTimeCount++
				}
			}
		case WorkflowStatusCancelled:
			stats.TotalCancelled++
			if policy.IncludeCancelledTime {
				if tracked := w.StageTotalMinutes(WorkflowStatusInProgress); tracked > 0 {
					durationSum += tracked
					durationCount++
				}
			}
		default:
			stats.TotalOpen++
		}
	}

	if terminal := stats.TotalCompleted + stats.TotalCancelled; terminal > 0 {
		rate := float64(stats.TotalCompleted) / float64(terminal)
		stats.CompletionRate = &rate
	}
	if onTimeEligible > 0 {
		rate := float64(onTimeCount) / float64(onTimeEligible)
		stats.OnTimeCompletionRate = &rate
	}
	if durationCount > 0 {
		avg := durationSum / float64(durationCount)
		stats.AverageCompletionMinutes = &avg
	}
	return stats
}
