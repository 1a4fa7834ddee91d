package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// WasteCategory identifies a kitchen waste cost bucket.
type WasteCategory string

const (
	WasteIngredient WasteCategory = "ingredient_waste"
	WasteServing    WasteCategory = "serving_waste"
	WasteExpiration WasteCategory = "expiration_waste"
)

// Waste view modes.
const (
	WasteViewMonthly = "monthly"
	WasteViewDaily   = "daily"
)

// WasteCost is one raw cost entry for a waste category. Period is "2006-01"
// in monthly series and "2006-01-02" in daily series.
type WasteCost struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Period   string             `json:"period" bson:"period"`
	Category WasteCategory      `json:"category" bson:"category"`
	Amount   float64            `json:"amount" bson:"amount"` // in USD
}

// WasteCategoryPoint is one merged reporting row: a period is bucketed as
// either historical or forecast, never both.
type WasteCategoryPoint struct {
	Period         string        `json:"period" bson:"period"`
	Category       WasteCategory `json:"category" bson:"category"`
	HistoricalCost float64       `json:"historical_cost" bson:"historical_cost"`
	ForecastCost   float64       `json:"forecast_cost" bson:"forecast_cost"`
}
