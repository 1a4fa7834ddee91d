package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip represents a vehicle trip from start to end location. EndTime is nil
// while the trip is in progress; only completed trips enter analysis.
// RoutePoints is kept as the raw JSON payload delivered by the GPS unit and
// parsed lazily, since units in the field occasionally send garbage.
type Trip struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DriverID      string             `json:"driver_id" bson:"driver_id"`
	VehicleID     string             `json:"vehicle_id" bson:"vehicle_id"`
	StartTime     time.Time          `json:"start_time" bson:"start_time"`
	EndTime       *time.Time         `json:"end_time,omitempty" bson:"end_time,omitempty"`
	StartLocation Location           `json:"start_location" bson:"start_location"`
	EndLocation   *Location          `json:"end_location,omitempty" bson:"end_location,omitempty"`
	Distance      float64            `json:"distance" bson:"distance"` // in kilometers
	RoutePoints   json.RawMessage    `json:"route_points,omitempty" bson:"route_points,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// Completed reports whether the trip has ended and is eligible for analysis.
func (t *Trip) Completed() bool {
	return t.EndTime != nil
}

// DurationHours returns the trip duration in hours, or 0 for in-progress trips.
func (t *Trip) DurationHours() float64 {
	if t.EndTime == nil {
		return 0
	}
	return t.EndTime.Sub(t.StartTime).Hours()
}
