package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnomalyType identifies the kind of route anomaly detected on a trip.
type AnomalyType string

const (
	AnomalyIrregularStops   AnomalyType = "irregular_stops"
	AnomalyInefficientRoute AnomalyType = "inefficient_route"
)

// Severity levels for anomalies and recommendations.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Anomaly is a single detected irregularity on a completed trip.
// Location is set only when the anomaly can be pinned to a coordinate.
type Anomaly struct {
	TripID    primitive.ObjectID `json:"trip_id" bson:"trip_id"`
	Type      AnomalyType        `json:"type" bson:"type"`
	Severity  Severity           `json:"severity" bson:"severity"`
	Details   string             `json:"details" bson:"details"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
	Location  *Location          `json:"location,omitempty" bson:"location,omitempty"`
}
