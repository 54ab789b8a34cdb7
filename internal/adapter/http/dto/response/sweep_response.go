package response

import "crm_senior/internal/usecase"

// SweepResponse mirrors the cron endpoint contract: success plus how many
// due reminders the sweep walked, failures included.
type SweepResponse struct {
	Success   bool `json:"success"`
	Processed int  `json:"processed"`
}

// SweepEmptyResponse is returned when no reminders were due.
type SweepEmptyResponse struct {
	Message string `json:"message"`
}

const sweepEmptyMessage = "No pending reminders"

func FromSweepResult(result usecase.SweepResult) SweepResponse {
	return SweepResponse{Success: true, Processed: result.Processed}
}

func EmptySweep() SweepEmptyResponse {
	return SweepEmptyResponse{Message: sweepEmptyMessage}
}
