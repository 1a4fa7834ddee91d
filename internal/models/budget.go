package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MonthlyConsumption is the historical ground truth for one calendar month,
// aggregated by the reporting pipeline. Read-only input for forecasting.
type MonthlyConsumption struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Month             int                `json:"month" bson:"month"` // 1-12
	Year              int                `json:"year" bson:"year"`
	FoodConsumption   float64            `json:"food_consumption" bson:"food_consumption"`         // in USD
	AssetsPurchased   float64            `json:"assets_purchased" bson:"assets_purchased"`         // in USD
	VehicleRentalCost float64            `json:"vehicle_rental_costs" bson:"vehicle_rental_costs"` // in USD
	Total             float64            `json:"total" bson:"total"`
}

// PredictionInterval is a point prediction with its confidence interval.
type PredictionInterval struct {
	PredictedAmount float64 `json:"predicted_amount" bson:"predicted_amount"`
	UpperBound      float64 `json:"upper_bound" bson:"upper_bound"`
	LowerBound      float64 `json:"lower_bound" bson:"lower_bound"`
	Confidence      float64 `json:"confidence" bson:"confidence"` // 0~1
}

// CategoryPredictions is the optional per-category breakdown attached to a
// model prediction. The model only distinguishes food and vehicle rental;
// assets are split off the food bucket downstream.
type CategoryPredictions struct {
	Food          PredictionInterval `json:"food" bson:"food"`
	VehicleRental PredictionInterval `json:"vehicle_rental" bson:"vehicle_rental"`
}

// BudgetPrediction is one sparse model output anchored at a horizon of
// 1, 3 or 6 months ahead.
type BudgetPrediction struct {
	ID                  primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Months              int                  `json:"months" bson:"months"` // horizon: 1, 3 or 6
	Prediction          PredictionInterval   `json:"prediction" bson:"prediction"`
	CategoryPredictions *CategoryPredictions `json:"category_predictions,omitempty" bson:"category_predictions,omitempty"`
	GeneratedAt         time.Time            `json:"generated_at" bson:"generated_at"`
}

// ForecastPoint is one future month densified from the sparse predictions.
type ForecastPoint struct {
	Month               int                  `json:"month" bson:"month"`
	Year                int                  `json:"year" bson:"year"`
	PredictedAmount     float64              `json:"predicted_amount" bson:"predicted_amount"`
	UpperBound          float64              `json:"upper_bound" bson:"upper_bound"`
	LowerBound          float64              `json:"lower_bound" bson:"lower_bound"`
	Confidence          float64              `json:"confidence" bson:"confidence"`
	CategoryPredictions *CategoryPredictions `json:"category_predictions,omitempty" bson:"category_predictions,omitempty"`
}

// CategoryForecast is the final per-month, per-category forecast served to
// the reporting UI. Total always equals the source point's predicted amount;
// the category fields are a decomposition of it, not independent forecasts.
type CategoryForecast struct {
	Month             int     `json:"month" bson:"month"`
	Year              int     `json:"year" bson:"year"`
	FoodConsumption   float64 `json:"food_consumption" bson:"food_consumption"`
	AssetsPurchased   float64 `json:"assets_purchased" bson:"assets_purchased"`
	VehicleRentalCost float64 `json:"vehicle_rental_costs" bson:"vehicle_rental_costs"`
	Total             float64 `json:"total" bson:"total"`
	Confidence        float64 `json:"confidence" bson:"confidence"`
}
