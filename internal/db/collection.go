package db

import (
	"context"

	"github.com/uydev/fleet-budget-analytics/internal/models"
)

// TripCollection defines the interface for trip data operations.
type TripCollection interface {
	InsertTrip(ctx context.Context, trip models.Trip) error
	FindCompletedByDriver(ctx context.Context, driverID string) ([]models.Trip, error)
	DistinctDriverIDs(ctx context.Context) ([]string, error)
}

// PredictionCollection defines the interface for budget prediction data operations.
type PredictionCollection interface {
	InsertPrediction(ctx context.Context, prediction models.BudgetPrediction) error
	FindPredictions(ctx context.Context) ([]models.BudgetPrediction, error)
}

// ConsumptionCollection defines the interface for historical monthly consumption data.
type ConsumptionCollection interface {
	InsertMonthlyConsumption(ctx context.Context, consumption models.MonthlyConsumption) error
	FindRecentMonths(ctx context.Context, limit int) ([]models.MonthlyConsumption, error)
}

// WasteCollection defines the interface for waste cost series, historical and forecast.
type WasteCollection interface {
	FindHistoricalCosts(ctx context.Context, view string) ([]models.WasteCost, error)
	FindForecastCosts(ctx context.Context) ([]models.WasteCost, error)
}
