package v1

import (
	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/finance-tracker/backend/pkg/models"
	"github.com/google/uuid"
)

type SummaryResponse struct {
	Data  *ledger.Summary `json:"data"`                                      // Income, expense and balance of the range
	Error *string         `json:"error" example:"the date range is invalid"` // The error, if any occurred
}

type SpendingByCategoryResponse struct {
	Data  []ledger.CategoryTotal `json:"data"`                                      // Expenses per category, highest first
	Error *string                `json:"error" example:"the date range is invalid"` // The error, if any occurred
}

type WeeklySummaryResponse struct {
	Data  *ledger.Rollup `json:"data"`                                                                // Summary of the last seven days
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// GoalProgress is the progress of a single savings goal.
type GoalProgress struct {
	GoalID uuid.UUID `json:"goalId" example:"9ef3f4a2-7b2a-4f5e-8a06-07e2b1f01c2a"` // ID of the savings goal
	Name   string    `json:"name" example:"Emergency Fund"`                         // Name of the savings goal
	ledger.GoalProgress
}

type GoalProgressListResponse struct {
	Data  []GoalProgress `json:"data"`                                                                // Progress of all savings goals, newest goal first
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// Dashboard contains all reports for a range.
type Dashboard struct {
	Summary            ledger.Summary         `json:"summary"`            // Income, expense and balance of the range
	SpendingByCategory []ledger.CategoryTotal `json:"spendingByCategory"` // Expenses per category of the range
	WeeklySummary      ledger.Rollup          `json:"weeklySummary"`      // Summary of the last seven days, independent of the range
	SavingsGoals       []GoalProgress         `json:"savingsGoals"`       // Progress of all savings goals
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                      // All reports
	Error *string    `json:"error" example:"the date range is invalid"` // The error, if any occurred
}

// goalProgress returns the progress of all goals, rounded for display.
func goalProgress(goals []models.SavingsGoal) ([]GoalProgress, error) {
	progress := make([]GoalProgress, 0, len(goals))
	for _, goal := range goals {
		p, err := goal.Progress()
		if err != nil {
			return nil, err
		}

		progress = append(progress, GoalProgress{
			GoalID:       goal.ID,
			Name:         goal.Name,
			GoalProgress: p.Round(2),
		})
	}

	return progress, nil
}
