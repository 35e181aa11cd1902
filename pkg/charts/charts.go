// Package charts renders reports as PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	Width  = 800
	Height = 600
)

var ErrNoData = errors.New("there is no data to draw a chart for")

var (
	incomeColor  = drawing.ColorFromHex("10b981")
	expenseColor = drawing.ColorFromHex("ef4444")
)

var printer = message.NewPrinter(language.English)

// FormatAmount formats an amount with thousands separators and two decimals.
func FormatAmount(d decimal.Decimal) string {
	return printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

func background() chart.Style {
	return chart.Style{
		Padding: chart.Box{
			Top:    50,
			Left:   50,
			Right:  50,
			Bottom: 50,
		},
		FillColor: chart.ColorWhite,
	}
}

// Breakdown renders the spending by category as a donut chart
// in the colors of the categories.
func Breakdown(breakdown []ledger.CategoryTotal) ([]byte, error) {
	values := make([]chart.Value, 0, len(breakdown))
	for _, t := range breakdown {
		if !t.Total.IsPositive() {
			continue
		}

		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s", t.Name, FormatAmount(t.Total)),
			Value: t.Total.InexactFloat64(),
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(strings.TrimPrefix(t.Color, "#")),
				StrokeColor: chart.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}

	donut := chart.DonutChart{
		Width:      Width,
		Height:     Height,
		Values:     values,
		Background: background(),
	}

	buffer := bytes.NewBuffer([]byte{})
	err := donut.Render(chart.PNG, buffer)
	if err != nil {
		return nil, fmt.Errorf("failed to render spending by category: %w", err)
	}

	return buffer.Bytes(), nil
}

// Summary renders income and expense as a bar chart titled with the balance.
func Summary(s ledger.Summary) ([]byte, error) {
	if s.Income.IsZero() && s.Expense.IsZero() {
		return nil, ErrNoData
	}

	bars := chart.BarChart{
		Title:      fmt.Sprintf("Balance: %s", FormatAmount(s.Balance)),
		Width:      Width,
		Height:     Height,
		BarWidth:   120,
		Background: background(),
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				f, _ := v.(float64)
				return FormatAmount(decimal.NewFromFloat(f))
			},
		},
		Bars: []chart.Value{
			{
				Label: fmt.Sprintf("Income: %s", FormatAmount(s.Income)),
				Value: s.Income.InexactFloat64(),
				Style: chart.Style{FillColor: incomeColor, StrokeColor: incomeColor},
			},
			{
				Label: fmt.Sprintf("Expense: %s", FormatAmount(s.Expense)),
				Value: s.Expense.InexactFloat64(),
				Style: chart.Style{FillColor: expenseColor, StrokeColor: expenseColor},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	err := bars.Render(chart.PNG, buffer)
	if err != nil {
		return nil, fmt.Errorf("failed to render summary: %w", err)
	}

	return buffer.Bytes(), nil
}
