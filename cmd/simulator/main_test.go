package main

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uydev/fleet-budget-analytics/internal/analysis"
	"github.com/uydev/fleet-budget-analytics/internal/models"
)

func TestBuildRoutePoints_SampleCountAndOrdering(t *testing.T) {
	start := models.Location{Lat: 51.5, Lon: -0.1}
	end := models.Location{Lat: 48.85, Lon: 2.35}
	startTime := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	points := buildRoutePoints(start, end, startTime, 40, 0)
	assert.Len(t, points, 40)
	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].Timestamp.After(points[i-1].Timestamp))
	}
}

func TestBuildRoutePoints_StopClustersInjected(t *testing.T) {
	start := models.Location{Lat: 51.5, Lon: -0.1}
	end := models.Location{Lat: 48.85, Lon: 2.35}
	startTime := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	points := buildRoutePoints(start, end, startTime, 40, 4)
	// 40 moving samples plus 4 clusters of 8 stationary samples.
	assert.Len(t, points, 72)
}

func TestBuildTrip_StopClusterVariantTriggersDetector(t *testing.T) {
	// tripIndex % 3 == 2 is the stop-cluster variant.
	trip := buildTrip("driver-1", 2)

	require.NotNil(t, trip.EndTime)
	assert.True(t, trip.EndTime.After(trip.StartTime))

	var points []models.RoutePoint
	require.NoError(t, json.Unmarshal(trip.RoutePoints, &points))
	assert.Greater(t, len(points), 40)

	anomalies := analysis.DetectAnomalies(&trip)
	found := false
	for _, a := range anomalies {
		if a.Type == models.AnomalyIrregularStops {
			found = true
		}
	}
	assert.True(t, found, "expected an irregular_stops anomaly from the stop-cluster variant")
}

func TestBuildTrip_DetourVariantInflatesDistance(t *testing.T) {
	// tripIndex % 3 == 1 is the detour variant; traveled distance is at
	// least 1.6x the direct distance, which puts the efficiency ratio under
	// the anomaly threshold.
	trip := buildTrip("driver-1", 1)

	anomalies := analysis.DetectAnomalies(&trip)
	found := false
	for _, a := range anomalies {
		if a.Type == models.AnomalyInefficientRoute {
			found = true
		}
	}
	assert.True(t, found, "expected an inefficient_route anomaly from the detour variant")
}
