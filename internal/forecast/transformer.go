package forecast

import (
	"time"

	"github.com/uydev/fleet-budget-analytics/internal/models"
)

// forecastHorizonMonths is the fixed number of future months every forecast covers.
const forecastHorizonMonths = 6

// horizonDecayPerMonth is the linear confidence decay applied per month of
// distance between a prediction's anchor horizon and the target month. The
// resulting factor is deliberately left unclamped and can go negative for
// large mismatches.
const horizonDecayPerMonth = 0.05

// ExpandPredictions densifies the sparse multi-horizon predictions into one
// ForecastPoint per future month, in chronological order starting the month
// after from. Returns nil when no predictions are available.
func ExpandPredictions(predictions []models.BudgetPrediction, from time.Time) []models.ForecastPoint {
	if len(predictions) == 0 {
		return nil
	}

	points := make([]models.ForecastPoint, 0, forecastHorizonMonths)
	for i := 1; i <= forecastHorizonMonths; i++ {
		closest := closestPrediction(predictions, i)
		distance := absInt(closest.Months - i)
		adjustment := 1 - float64(distance)*horizonDecayPerMonth

		month, year := monthAfter(from, i)
		point := models.ForecastPoint{
			Month:           month,
			Year:            year,
			PredictedAmount: closest.Prediction.PredictedAmount * adjustment,
			UpperBound:      closest.Prediction.UpperBound * adjustment,
			LowerBound:      closest.Prediction.LowerBound * adjustment,
			Confidence:      closest.Prediction.Confidence,
		}
		if cp := closest.CategoryPredictions; cp != nil {
			point.CategoryPredictions = &models.CategoryPredictions{
				Food: models.PredictionInterval{
					PredictedAmount: cp.Food.PredictedAmount * adjustment,
					UpperBound:      cp.Food.UpperBound * adjustment,
					LowerBound:      cp.Food.LowerBound * adjustment,
					Confidence:      cp.Food.Confidence,
				},
				// Vehicle rental models fixed recurring payments and is
				// propagated without horizon scaling.
				VehicleRental: cp.VehicleRental,
			}
		}
		points = append(points, point)
	}
	return points
}

// closestPrediction picks the prediction whose horizon is nearest to the
// target month index. Ties go to the earliest entry in list order.
func closestPrediction(predictions []models.BudgetPrediction, targetMonth int) models.BudgetPrediction {
	closest := predictions[0]
	best := absInt(closest.Months - targetMonth)
	for _, p := range predictions[1:] {
		if d := absInt(p.Months - targetMonth); d < best {
			best = d
			closest = p
		}
	}
	return closest
}

// monthAfter returns the calendar month and year offset months after from,
// using pure month arithmetic so end-of-month dates cannot skip a month.
func monthAfter(from time.Time, offset int) (month, year int) {
	m := int(from.Month()) + offset
	year = from.Year() + (m-1)/12
	month = (m-1)%12 + 1
	return month, year
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
