package v1

import (
	"net/http"

	"github.com/finance-tracker/backend/pkg/charts"
	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/finance-tracker/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterChartRoutes registers the chart routes with the RouterGroup
// that is passed.
func RegisterChartRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/spending-by-category.png", OptionsReport)
	r.GET("/spending-by-category.png", GetSpendingByCategoryChart)
	r.OPTIONS("/summary.png", OptionsReport)
	r.GET("/summary.png", GetSummaryChart)
}

// @Summary		Spending by category chart
// @Description	Returns a PNG donut chart of the expenses per category for the date range
// @Tags			Charts
// @Security		BasicAuth
// @Produce		png
// @Success		200
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			startDate	query		string	false	"First date to include, YYYY-MM-DD"
// @Param			endDate		query		string	false	"Last date to include, YYYY-MM-DD"
// @Router			/v1/charts/spending-by-category.png [get]
func GetSpendingByCategoryChart(c *gin.Context) {
	renderChart(c, func(entries []ledger.Entry) ([]byte, error) {
		breakdown, err := ledger.BreakdownByCategory(entries)
		if err != nil {
			return nil, err
		}

		return charts.Breakdown(breakdown)
	})
}

// @Summary		Summary chart
// @Description	Returns a PNG bar chart of income and expense for the date range
// @Tags			Charts
// @Security		BasicAuth
// @Produce		png
// @Success		200
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			startDate	query		string	false	"First date to include, YYYY-MM-DD"
// @Param			endDate		query		string	false	"Last date to include, YYYY-MM-DD"
// @Router			/v1/charts/summary.png [get]
func GetSummaryChart(c *gin.Context) {
	renderChart(c, func(entries []ledger.Entry) ([]byte, error) {
		summary, err := ledger.Summarize(entries)
		if err != nil {
			return nil, err
		}

		return charts.Summary(summary)
	})
}

// renderChart loads the entries for the date range and writes the
// PNG image that render returns for them.
func renderChart(c *gin.Context, render func([]ledger.Entry) ([]byte, error)) {
	f, err := reportFilter(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	entries, err := models.Store{DB: models.DB}.Entries(c.Request.Context(), f)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	png, err := render(entries)
	if err != nil {
		logEngineError(c, err)
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
