package models

import "time"

// Location represents a geographical location with latitude and longitude coordinates.
type Location struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lon float64 `bson:"lon" json:"lon"`
}

// RoutePoint is a single GPS sample recorded along a trip.
type RoutePoint struct {
	Lat       float64   `bson:"lat" json:"lat"`
	Lon       float64   `bson:"lon" json:"lon"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
