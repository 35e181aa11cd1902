package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/finance-tracker/backend/pkg/httputil"
	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/finance-tracker/backend/pkg/models"
	"github.com/finance-tracker/backend/pkg/query"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// RegisterReportRoutes registers the report routes with the RouterGroup
// that is passed. The savings goal progress is registered with the
// savings goal routes.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", OptionsReport)
	r.GET("/summary", GetSummary)
	r.OPTIONS("/spending-by-category", OptionsReport)
	r.GET("/spending-by-category", GetSpendingByCategory)
	r.OPTIONS("/weekly-summary", OptionsReport)
	r.GET("/weekly-summary", GetWeeklySummary)
	r.OPTIONS("/dashboard", OptionsReport)
	r.GET("/dashboard", GetDashboard)
}

// reportFilter returns the filter for the date range in the query string.
func reportFilter(c *gin.Context) (query.Filter, error) {
	var q QueryDateRange
	if err := c.ShouldBindQuery(&q); err != nil {
		return query.Filter{}, fmt.Errorf("%w: %w", httputil.ErrInvalidQueryString, err)
	}

	return q.filter(httputil.OwnerID(c))
}

// weeklyFilter returns the filter for the trailing window of the weekly summary.
func weeklyFilter(ownerID uuid.UUID, now time.Time) query.Filter {
	return query.Filter{
		OwnerID: ownerID,
		Range:   query.Trailing(now, ledger.WeeklyWindowDays),
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Security		BasicAuth
// @Success		204
// @Router			/v1/summary [options]
// @Router			/v1/spending-by-category [options]
// @Router			/v1/weekly-summary [options]
// @Router			/v1/dashboard [options]
// @Router			/v1/savings-goals/progress [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Summary
// @Description	Returns income, expense and balance for the date range. Without a range, all transactions are summarized.
// @Tags			Reports
// @Security		BasicAuth
// @Produce		json
// @Success		200			{object}	SummaryResponse
// @Failure		400			{object}	SummaryResponse
// @Failure		500			{object}	SummaryResponse
// @Param			startDate	query		string	false	"First date to include, YYYY-MM-DD"
// @Param			endDate		query		string	false	"Last date to include, YYYY-MM-DD"
// @Router			/v1/summary [get]
func GetSummary(c *gin.Context) {
	f, err := reportFilter(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	entries, err := models.Store{DB: models.DB}.Entries(c.Request.Context(), f)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	summary, err := ledger.Summarize(entries)
	if err != nil {
		logEngineError(c, err)
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	summary = summary.Round(2)
	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}

// @Summary		Spending by category
// @Description	Returns the expenses per category for the date range, highest total first
// @Tags			Reports
// @Security		BasicAuth
// @Produce		json
// @Success		200			{object}	SpendingByCategoryResponse
// @Failure		400			{object}	SpendingByCategoryResponse
// @Failure		500			{object}	SpendingByCategoryResponse
// @Param			startDate	query		string	false	"First date to include, YYYY-MM-DD"
// @Param			endDate		query		string	false	"Last date to include, YYYY-MM-DD"
// @Router			/v1/spending-by-category [get]
func GetSpendingByCategory(c *gin.Context) {
	f, err := reportFilter(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SpendingByCategoryResponse{
			Error: &s,
		})
		return
	}

	entries, err := models.Store{DB: models.DB}.Entries(c.Request.Context(), f)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SpendingByCategoryResponse{
			Error: &s,
		})
		return
	}

	breakdown, err := ledger.BreakdownByCategory(entries)
	if err != nil {
		logEngineError(c, err)
		s := err.Error()
		c.JSON(status(err), SpendingByCategoryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SpendingByCategoryResponse{Data: ledger.RoundBreakdown(breakdown, 2)})
}

// @Summary		Weekly summary
// @Description	Returns income, expense, balance and number of transactions of the last seven days and today
// @Tags			Reports
// @Security		BasicAuth
// @Produce		json
// @Success		200	{object}	WeeklySummaryResponse
// @Failure		500	{object}	WeeklySummaryResponse
// @Router			/v1/weekly-summary [get]
func GetWeeklySummary(c *gin.Context) {
	now := time.Now()

	entries, err := models.Store{DB: models.DB}.Entries(c.Request.Context(), weeklyFilter(httputil.OwnerID(c), now))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklySummaryResponse{
			Error: &s,
		})
		return
	}

	rollup, err := ledger.WeeklyRollup(entries, now)
	if err != nil {
		logEngineError(c, err)
		s := err.Error()
		c.JSON(status(err), WeeklySummaryResponse{
			Error: &s,
		})
		return
	}

	rollup = rollup.Round(2)
	c.JSON(http.StatusOK, WeeklySummaryResponse{Data: &rollup})
}

// @Summary		Savings goal progress
// @Description	Returns the progress of all savings goals
// @Tags			Reports
// @Security		BasicAuth
// @Produce		json
// @Success		200	{object}	GoalProgressListResponse
// @Failure		500	{object}	GoalProgressListResponse
// @Router			/v1/savings-goals/progress [get]
func GetGoalProgress(c *gin.Context) {
	goals, err := models.Store{DB: models.DB}.Goals(c.Request.Context(), httputil.OwnerID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalProgressListResponse{
			Error: &s,
		})
		return
	}

	progress, err := goalProgress(goals)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalProgressListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, GoalProgressListResponse{Data: progress})
}

// @Summary		Dashboard
// @Description	Returns the summary and the spending by category for the date range together with the weekly summary and the savings goal progress
// @Tags			Reports
// @Security		BasicAuth
// @Produce		json
// @Success		200			{object}	DashboardResponse
// @Failure		400			{object}	DashboardResponse
// @Failure		500			{object}	DashboardResponse
// @Param			startDate	query		string	false	"First date to include, YYYY-MM-DD"
// @Param			endDate		query		string	false	"Last date to include, YYYY-MM-DD"
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	f, err := reportFilter(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	now := time.Now()
	store := models.Store{DB: models.DB}

	var (
		entries []ledger.Entry
		weekly  []ledger.Entry
		goals   []models.SavingsGoal
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		entries, err = store.Entries(ctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		weekly, err = store.Entries(ctx, weeklyFilter(f.OwnerID, now))
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = store.Goals(ctx, f.OwnerID)
		return err
	})

	err = g.Wait()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	dashboard, err := newDashboard(entries, weekly, goals, now)
	if err != nil {
		logEngineError(c, err)
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &dashboard})
}

func newDashboard(entries, weekly []ledger.Entry, goals []models.SavingsGoal, now time.Time) (Dashboard, error) {
	summary, err := ledger.Summarize(entries)
	if err != nil {
		return Dashboard{}, err
	}

	breakdown, err := ledger.BreakdownByCategory(entries)
	if err != nil {
		return Dashboard{}, err
	}

	rollup, err := ledger.WeeklyRollup(weekly, now)
	if err != nil {
		return Dashboard{}, err
	}

	progress, err := goalProgress(goals)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Summary:            summary.Round(2),
		SpendingByCategory: ledger.RoundBreakdown(breakdown, 2),
		WeeklySummary:      rollup.Round(2),
		SavingsGoals:       progress,
	}, nil
}
