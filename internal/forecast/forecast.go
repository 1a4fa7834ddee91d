// Package forecast turns sparse multi-horizon budget predictions into a
// dense per-month, per-category forecast for the reporting UI.
package forecast

import (
	"time"

	"github.com/uydev/fleet-budget-analytics/internal/models"
)

// BuildForecast produces exactly six monthly category forecasts starting the
// month after from, or an empty result when either input is empty.
func BuildForecast(predictions []models.BudgetPrediction, historical []models.MonthlyConsumption, from time.Time) []models.CategoryForecast {
	if len(predictions) == 0 || len(historical) == 0 {
		return nil
	}
	points := ExpandPredictions(predictions, from)
	return SplitByCategory(points, historical)
}
