package forecast

import (
	"sort"

	"github.com/uydev/fleet-budget-analytics/internal/models"
)

// AggregateWasteCosts merges historical and forecast waste cost series into
// one reporting view. In monthly mode every period appearing in either
// series is emitted once per category, bucketed as either historical or
// forecast: a period present in the forecast series is a forecast month and
// its historical bucket stays zero, so no month is double-counted. In daily
// mode forecasting does not apply and only historical costs are aggregated.
func AggregateWasteCosts(historical, forecastCosts []models.WasteCost, view string) []models.WasteCategoryPoint {
	if view == models.WasteViewDaily {
		return aggregateDaily(historical)
	}
	return aggregateMonthly(historical, forecastCosts)
}

type periodCategory struct {
	period   string
	category models.WasteCategory
}

func aggregateMonthly(historical, forecastCosts []models.WasteCost) []models.WasteCategoryPoint {
	forecastPeriods := make(map[string]bool)
	for _, c := range forecastCosts {
		forecastPeriods[c.Period] = true
	}

	historicalSums := sumByPeriodCategory(historical)
	forecastSums := sumByPeriodCategory(forecastCosts)

	keys := make(map[periodCategory]bool)
	for k := range historicalSums {
		keys[k] = true
	}
	for k := range forecastSums {
		keys[k] = true
	}

	points := make([]models.WasteCategoryPoint, 0, len(keys))
	for k := range keys {
		point := models.WasteCategoryPoint{Period: k.period, Category: k.category}
		if forecastPeriods[k.period] {
			point.ForecastCost = forecastSums[k]
		} else {
			point.HistoricalCost = historicalSums[k]
		}
		points = append(points, point)
	}
	sortPoints(points)
	return points
}

func aggregateDaily(historical []models.WasteCost) []models.WasteCategoryPoint {
	sums := sumByPeriodCategory(historical)
	points := make([]models.WasteCategoryPoint, 0, len(sums))
	for k, amount := range sums {
		points = append(points, models.WasteCategoryPoint{
			Period:         k.period,
			Category:       k.category,
			HistoricalCost: amount,
		})
	}
	sortPoints(points)
	return points
}

func sumByPeriodCategory(costs []models.WasteCost) map[periodCategory]float64 {
	sums := make(map[periodCategory]float64, len(costs))
	for _, c := range costs {
		sums[periodCategory{period: c.Period, category: c.Category}] += c.Amount
	}
	return sums
}

func sortPoints(points []models.WasteCategoryPoint) {
	sort.Slice(points, func(i, j int) bool {
		if points[i].Period != points[j].Period {
			return points[i].Period < points[j].Period
		}
		return points[i].Category < points[j].Category
	})
}
