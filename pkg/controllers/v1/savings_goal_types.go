package v1

import (
	"fmt"

	"github.com/finance-tracker/backend/internal/types"
	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/finance-tracker/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SavingsGoalEditable represents all user configurable parameters
type SavingsGoalEditable struct {
	Name          string          `json:"name" example:"Emergency Fund"`                      // Name of the goal
	TargetAmount  decimal.Decimal `json:"targetAmount" swaggertype:"string" example:"10000"`  // The amount to save up to. Must be larger than zero
	CurrentAmount decimal.Decimal `json:"currentAmount" swaggertype:"string" example:"2500"`  // The amount saved so far. May exceed the target
	Deadline      types.Date      `json:"deadline" swaggertype:"string" example:"2025-05-17"` // Date the goal should be reached by, optional
}

func (e SavingsGoalEditable) model() models.SavingsGoal {
	return models.SavingsGoal{
		Name:          e.Name,
		TargetAmount:  e.TargetAmount,
		CurrentAmount: e.CurrentAmount,
		Deadline:      e.Deadline,
	}
}

type SavingsGoalLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/savings-goals/9ef3f4a2-7b2a-4f5e-8a06-07e2b1f01c2a"`                        // The goal itself
	Contributions string `json:"contributions" example:"https://example.com/api/v1/savings-goals/9ef3f4a2-7b2a-4f5e-8a06-07e2b1f01c2a/contributions"` // Endpoint to add to the current amount
}

type SavingsGoal struct {
	models.DefaultModel
	SavingsGoalEditable
	Progress ledger.GoalProgress `json:"progress"` // Progress towards the target amount
	Links    SavingsGoalLinks    `json:"links"`    // Links to related resources
}

func newSavingsGoal(c *gin.Context, model models.SavingsGoal) (SavingsGoal, error) {
	url := c.GetString(string(models.DBContextURL))

	progress, err := model.Progress()
	if err != nil {
		return SavingsGoal{}, fmt.Errorf("savings goal %s: %w", model.ID, err)
	}

	return SavingsGoal{
		DefaultModel: model.DefaultModel,
		SavingsGoalEditable: SavingsGoalEditable{
			Name:          model.Name,
			TargetAmount:  model.TargetAmount,
			CurrentAmount: model.CurrentAmount,
			Deadline:      model.Deadline,
		},
		Progress: progress.Round(2),
		Links: SavingsGoalLinks{
			Self:          fmt.Sprintf("%s/v1/savings-goals/%s", url, model.ID),
			Contributions: fmt.Sprintf("%s/v1/savings-goals/%s/contributions", url, model.ID),
		},
	}, nil
}

type SavingsGoalListResponse struct {
	Data  []SavingsGoal `json:"data"`                                                          // List of savings goals
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SavingsGoalCreateResponse struct {
	Data  []SavingsGoalResponse `json:"data"`                                                          // List of created savings goals
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// appendError appends a SavingsGoalResponse with the error and returns the updated HTTP status
func (r *SavingsGoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, SavingsGoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SavingsGoalResponse struct {
	Data  *SavingsGoal `json:"data"`                                                          // Data for the savings goal
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// Contribution is an amount added to the current amount of a goal.
type Contribution struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"250"` // Must be larger than zero
}
