package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uydev/fleet-budget-analytics/internal/models"
)

func TestAggregateWasteCosts_MonthlyPartition(t *testing.T) {
	historical := []models.WasteCost{
		{Period: "2025-06", Category: models.WasteIngredient, Amount: 10},
		{Period: "2025-06", Category: models.WasteIngredient, Amount: 5},
		{Period: "2025-07", Category: models.WasteIngredient, Amount: 20},
	}
	forecastCosts := []models.WasteCost{
		{Period: "2025-07", Category: models.WasteIngredient, Amount: 8},
		{Period: "2025-08", Category: models.WasteServing, Amount: 7},
	}

	points := AggregateWasteCosts(historical, forecastCosts, models.WasteViewMonthly)
	require.Len(t, points, 3)

	// 2025-06 is purely historical.
	assert.Equal(t, "2025-06", points[0].Period)
	assert.Equal(t, 15.0, points[0].HistoricalCost)
	assert.Equal(t, 0.0, points[0].ForecastCost)

	// 2025-07 appears in the forecast series, so its historical bucket is
	// zeroed rather than double-counted.
	assert.Equal(t, "2025-07", points[1].Period)
	assert.Equal(t, 0.0, points[1].HistoricalCost)
	assert.Equal(t, 8.0, points[1].ForecastCost)

	// 2025-08 is forecast only.
	assert.Equal(t, "2025-08", points[2].Period)
	assert.Equal(t, models.WasteServing, points[2].Category)
	assert.Equal(t, 0.0, points[2].HistoricalCost)
	assert.Equal(t, 7.0, points[2].ForecastCost)
}

func TestAggregateWasteCosts_MonthlyCategoriesKeptApart(t *testing.T) {
	historical := []models.WasteCost{
		{Period: "2025-06", Category: models.WasteIngredient, Amount: 10},
		{Period: "2025-06", Category: models.WasteExpiration, Amount: 4},
	}

	points := AggregateWasteCosts(historical, nil, models.WasteViewMonthly)
	require.Len(t, points, 2)
	assert.Equal(t, models.WasteExpiration, points[0].Category)
	assert.Equal(t, 4.0, points[0].HistoricalCost)
	assert.Equal(t, models.WasteIngredient, points[1].Category)
	assert.Equal(t, 10.0, points[1].HistoricalCost)
}

func TestAggregateWasteCosts_DailyIgnoresForecast(t *testing.T) {
	historical := []models.WasteCost{
		{Period: "2025-06-03", Category: models.WasteServing, Amount: 2},
		{Period: "2025-06-01", Category: models.WasteIngredient, Amount: 3},
		{Period: "2025-06-01", Category: models.WasteIngredient, Amount: 1},
	}
	forecastCosts := []models.WasteCost{
		{Period: "2025-07", Category: models.WasteIngredient, Amount: 99},
	}

	points := AggregateWasteCosts(historical, forecastCosts, models.WasteViewDaily)
	require.Len(t, points, 2)

	// Sorted ascending by day key, forecast series ignored.
	assert.Equal(t, "2025-06-01", points[0].Period)
	assert.Equal(t, 4.0, points[0].HistoricalCost)
	assert.Equal(t, 0.0, points[0].ForecastCost)
	assert.Equal(t, "2025-06-03", points[1].Period)
	assert.Equal(t, 2.0, points[1].HistoricalCost)
}

func TestAggregateWasteCosts_EmptyInputs(t *testing.T) {
	assert.Empty(t, AggregateWasteCosts(nil, nil, models.WasteViewMonthly))
	assert.Empty(t, AggregateWasteCosts(nil, nil, models.WasteViewDaily))
}
