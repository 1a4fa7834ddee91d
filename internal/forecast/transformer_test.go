package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uydev/fleet-budget-analytics/internal/models"
)

func prediction(months int, amount float64) models.BudgetPrediction {
	return models.BudgetPrediction{
		Months: months,
		Prediction: models.PredictionInterval{
			PredictedAmount: amount,
			UpperBound:      amount * 1.1,
			LowerBound:      amount * 0.9,
			Confidence:      0.8,
		},
	}
}

func TestExpandPredictions_EmptyInput(t *testing.T) {
	assert.Nil(t, ExpandPredictions(nil, time.Now()))
}

func TestExpandPredictions_AlwaysSixMonths(t *testing.T) {
	from := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	points := ExpandPredictions([]models.BudgetPrediction{prediction(3, 300)}, from)

	require.Len(t, points, 6)
	assert.Equal(t, 12, points[0].Month)
	assert.Equal(t, 2025, points[0].Year)
	for i := 1; i < 6; i++ {
		assert.Equal(t, i, points[i].Month)
		assert.Equal(t, 2026, points[i].Year)
	}
}

func TestExpandPredictions_EndOfMonthDoesNotSkip(t *testing.T) {
	from := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	points := ExpandPredictions([]models.BudgetPrediction{prediction(1, 100)}, from)

	require.Len(t, points, 6)
	assert.Equal(t, 2, points[0].Month) // February, not March
	assert.Equal(t, 3, points[1].Month)
}

func TestExpandPredictions_ClosestHorizonSelection(t *testing.T) {
	preds := []models.BudgetPrediction{
		prediction(1, 100),
		prediction(3, 300),
		prediction(6, 600),
	}
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	points := ExpandPredictions(preds, from)
	require.Len(t, points, 6)

	// i=1: horizon 1, distance 0 -> 100 * 1.0
	assert.InDelta(t, 100, points[0].PredictedAmount, 1e-9)
	// i=2: horizons 1 and 3 tie at distance 1; first in list order wins.
	assert.InDelta(t, 95, points[1].PredictedAmount, 1e-9)
	// i=3: horizon 3, distance 0
	assert.InDelta(t, 300, points[2].PredictedAmount, 1e-9)
	// i=4: horizon 3, distance 1
	assert.InDelta(t, 285, points[3].PredictedAmount, 1e-9)
	// i=5: horizon 6 at distance 1 beats horizon 3 at distance 2.
	assert.InDelta(t, 570, points[4].PredictedAmount, 1e-9)
	// i=6: horizon 6, distance 0
	assert.InDelta(t, 600, points[5].PredictedAmount, 1e-9)
}

func TestExpandPredictions_BoundsScaledConfidenceCarried(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	points := ExpandPredictions([]models.BudgetPrediction{prediction(1, 100)}, from)
	require.Len(t, points, 6)

	// i=2: distance 1, adjustment 0.95.
	assert.InDelta(t, 110*0.95, points[1].UpperBound, 1e-9)
	assert.InDelta(t, 90*0.95, points[1].LowerBound, 1e-9)
	assert.Equal(t, 0.8, points[1].Confidence)
}

func TestExpandPredictions_AdjustmentCanGoNegative(t *testing.T) {
	// A grossly out-of-range horizon drives the factor below zero; by parity
	// it is not clamped.
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	points := ExpandPredictions([]models.BudgetPrediction{prediction(30, 100)}, from)
	require.Len(t, points, 6)

	// i=1: distance 29, adjustment 1 - 1.45 = -0.45.
	assert.InDelta(t, -45, points[0].PredictedAmount, 1e-9)
}

func TestExpandPredictions_CategoryAsymmetry(t *testing.T) {
	pred := prediction(1, 1000)
	pred.CategoryPredictions = &models.CategoryPredictions{
		Food: models.PredictionInterval{
			PredictedAmount: 200,
			UpperBound:      220,
			LowerBound:      180,
			Confidence:      0.75,
		},
		VehicleRental: models.PredictionInterval{
			PredictedAmount: 150,
			UpperBound:      160,
			LowerBound:      140,
			Confidence:      0.9,
		},
	}
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	points := ExpandPredictions([]models.BudgetPrediction{pred}, from)
	require.Len(t, points, 6)

	// i=3: distance 2, adjustment 0.9. Food scales, vehicle rental does not.
	cp := points[2].CategoryPredictions
	require.NotNil(t, cp)
	assert.InDelta(t, 180, cp.Food.PredictedAmount, 1e-9)
	assert.InDelta(t, 198, cp.Food.UpperBound, 1e-9)
	assert.Equal(t, 150.0, cp.VehicleRental.PredictedAmount)
	assert.Equal(t, 160.0, cp.VehicleRental.UpperBound)
	assert.Equal(t, 140.0, cp.VehicleRental.LowerBound)
}

func TestExpandPredictions_NoCategoryPredictions(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	points := ExpandPredictions([]models.BudgetPrediction{prediction(1, 100)}, from)
	for _, p := range points {
		assert.Nil(t, p.CategoryPredictions)
	}
}
