package forecast

import "github.com/uydev/fleet-budget-analytics/internal/models"

// Fixed split of the model's "food" prediction bucket between literal food
// consumption and asset purchases. A modeling simplification, not data-derived.
const (
	foodBucketFoodShare   = 0.7
	foodBucketAssetsShare = 0.3
)

// Default category proportions used when no historical spend exists.
const (
	defaultFoodProportion    = 0.33
	defaultAssetsProportion  = 0.33
	defaultVehicleProportion = 0.34
)

// SplitByCategory decomposes each forecast point's total into food, assets
// and vehicle rental. When the point carries model category predictions they
// are used directly; otherwise the split falls back to historical
// proportions, with vehicle rental carried forward from the last observed
// month as a step function. Total always equals the source predicted amount.
func SplitByCategory(points []models.ForecastPoint, historical []models.MonthlyConsumption) []models.CategoryForecast {
	foodProportion, assetsProportion, _ := historicalProportions(historical)

	var lastVehicleCost float64
	if len(historical) > 0 {
		lastVehicleCost = historical[len(historical)-1].VehicleRentalCost
	}

	forecasts := make([]models.CategoryForecast, 0, len(points))
	for _, point := range points {
		forecast := models.CategoryForecast{
			Month:      point.Month,
			Year:       point.Year,
			Total:      point.PredictedAmount,
			Confidence: point.Confidence,
		}

		if cp := point.CategoryPredictions; cp != nil {
			forecast.VehicleRentalCost = cp.VehicleRental.PredictedAmount
			forecast.FoodConsumption = cp.Food.PredictedAmount * foodBucketFoodShare
			forecast.AssetsPurchased = cp.Food.PredictedAmount * foodBucketAssetsShare
		} else {
			forecast.VehicleRentalCost = lastVehicleCost
			remaining := point.PredictedAmount - lastVehicleCost
			if share := foodProportion + assetsProportion; share > 0 {
				forecast.FoodConsumption = remaining * (foodProportion / share)
				forecast.AssetsPurchased = remaining * (assetsProportion / share)
			}
		}

		forecasts = append(forecasts, forecast)
	}
	return forecasts
}

// historicalProportions sums the historical category spend and returns each
// category's share of the total. A zero total yields the fixed defaults.
func historicalProportions(historical []models.MonthlyConsumption) (food, assets, vehicle float64) {
	var foodSum, assetsSum, vehicleSum, totalSum float64
	for _, m := range historical {
		foodSum += m.FoodConsumption
		assetsSum += m.AssetsPurchased
		vehicleSum += m.VehicleRentalCost
		totalSum += m.Total
	}
	if totalSum == 0 {
		return defaultFoodProportion, defaultAssetsProportion, defaultVehicleProportion
	}
	return foodSum / totalSum, assetsSum / totalSum, vehicleSum / totalSum
}
