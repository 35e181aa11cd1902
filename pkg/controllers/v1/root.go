// Package v1 implements the resource and report endpoints of the API.
package v1

import (
	"net/http"

	"github.com/finance-tracker/backend/pkg/httputil"
	"github.com/finance-tracker/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Me                 string `json:"me" example:"https://example.com/api/v1/me"`                                   // The authenticated user
	Categories         string `json:"categories" example:"https://example.com/api/v1/categories"`                   // URL of category list endpoint
	Transactions       string `json:"transactions" example:"https://example.com/api/v1/transactions"`               // URL of transaction list endpoint
	SavingsGoals       string `json:"savingsGoals" example:"https://example.com/api/v1/savings-goals"`              // URL of savings goal list endpoint
	Summary            string `json:"summary" example:"https://example.com/api/v1/summary"`                         // Income, expense and balance
	SpendingByCategory string `json:"spendingByCategory" example:"https://example.com/api/v1/spending-by-category"` // Expenses per category
	WeeklySummary      string `json:"weeklySummary" example:"https://example.com/api/v1/weekly-summary"`            // Summary of the last seven days
	GoalProgress       string `json:"goalProgress" example:"https://example.com/api/v1/savings-goals/progress"`     // Progress of all savings goals
	Dashboard          string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`                     // All reports in one response
	Charts             string `json:"charts" example:"https://example.com/api/v1/charts/spending-by-category.png"`  // Chart of the expenses per category
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	RegisterUserRoutes(r.Group("/me"))
	RegisterCategoryRoutes(r.Group("/categories"))
	RegisterTransactionRoutes(r.Group("/transactions"))
	RegisterSavingsGoalRoutes(r.Group("/savings-goals"))
	RegisterReportRoutes(r)
	RegisterChartRoutes(r.Group("/charts"))
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Security		BasicAuth
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Me:                 url + "/v1/me",
			Categories:         url + "/v1/categories",
			Transactions:       url + "/v1/transactions",
			SavingsGoals:       url + "/v1/savings-goals",
			Summary:            url + "/v1/summary",
			SpendingByCategory: url + "/v1/spending-by-category",
			WeeklySummary:      url + "/v1/weekly-summary",
			GoalProgress:       url + "/v1/savings-goals/progress",
			Dashboard:          url + "/v1/dashboard",
			Charts:             url + "/v1/charts/spending-by-category.png",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Security		BasicAuth
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
