package analysis

import (
	"fmt"
	"math"

	"github.com/uydev/fleet-budget-analytics/internal/models"
)

// Per-incident saving estimates in USD used for the cost-saving figure.
const (
	savingPerInefficientRoute = 50.0
	savingPerIrregularStop    = 30.0
)

// TripStats aggregates one driver's completed trips as input to scoring.
type TripStats struct {
	TripsCount         int
	TotalDistanceKm    float64
	TotalDurationHours float64
	AverageSpeedKmH    float64
	TotalFuelEstimateL float64
	IrregularStops     int
	InefficientRoutes  int
	Anomalies          []models.Anomaly
}

// ScoreDriver derives the driver performance scores and recommendations from
// the aggregated trip statistics. With no completed trips all scores are 0
// and a single no_data recommendation is returned.
func ScoreDriver(stats TripStats) (models.DriverPerformance, []models.Recommendation) {
	if stats.TripsCount == 0 {
		return models.DriverPerformance{}, []models.Recommendation{{
			Type:    models.RecommendationNoData,
			Level:   models.LevelInfo,
			Message: "No completed trips available for analysis",
		}}
	}

	safety := safetyScore(stats)
	efficiency := efficiencyScore(stats)
	consistency := consistencyScore(stats)
	overall := clampScore(0.4*float64(safety) + 0.4*float64(efficiency) + 0.2*float64(consistency))

	perf := models.DriverPerformance{
		SafetyScore:      safety,
		EfficiencyScore:  efficiency,
		ConsistencyScore: consistency,
		OverallScore:     overall,
	}
	return perf, buildRecommendations(stats)
}

// CostSavingEstimate is the flat per-incident saving estimate in USD.
func CostSavingEstimate(stats TripStats) float64 {
	return float64(stats.InefficientRoutes)*savingPerInefficientRoute +
		float64(stats.IrregularStops)*savingPerIrregularStop
}

func safetyScore(stats TripStats) int {
	score := 100.0

	switch {
	case stats.AverageSpeedKmH > 90:
		score -= 30
	case stats.AverageSpeedKmH > 80:
		score -= 20
	case stats.AverageSpeedKmH > 70:
		score -= 10
	}

	stopsPerTrip := float64(stats.IrregularStops) / float64(stats.TripsCount)
	switch {
	case stopsPerTrip > 2:
		score -= 30
	case stopsPerTrip > 1:
		score -= 15
	case stopsPerTrip > 0.5:
		score -= 5
	}

	return clampScore(score)
}

func efficiencyScore(stats TripStats) int {
	score := 100.0

	var fuelPer100Km float64
	if stats.TotalDistanceKm > 0 {
		fuelPer100Km = stats.TotalFuelEstimateL / stats.TotalDistanceKm * 100
	}
	switch {
	case fuelPer100Km > 15:
		score -= 30
	case fuelPer100Km > 12:
		score -= 20
	case fuelPer100Km > 10:
		score -= 10
	}

	inefficientPerTrip := float64(stats.InefficientRoutes) / float64(stats.TripsCount)
	switch {
	case inefficientPerTrip > 0.5:
		score -= 30
	case inefficientPerTrip > 0.3:
		score -= 15
	case inefficientPerTrip > 0.1:
		score -= 5
	}

	return clampScore(score)
}

func consistencyScore(stats TripStats) int {
	score := 100.0

	anomaliesPerTrip := float64(len(stats.Anomalies)) / float64(stats.TripsCount)
	switch {
	case anomaliesPerTrip > 0.5:
		score -= 30
	case anomaliesPerTrip > 0.3:
		score -= 15
	case anomaliesPerTrip > 0.1:
		score -= 5
	}

	highSeverity := 0
	for _, a := range stats.Anomalies {
		if a.Severity == models.SeverityHigh {
			highSeverity++
		}
	}
	switch {
	case highSeverity > 3:
		score -= 20
	case highSeverity > 1:
		score -= 10
	case highSeverity > 0:
		score -= 5
	}

	return clampScore(score)
}

func buildRecommendations(stats TripStats) []models.Recommendation {
	var recs []models.Recommendation

	if stats.InefficientRoutes > 0 {
		recs = append(recs, models.Recommendation{
			Type:    models.RecommendationRouteOptimization,
			Level:   models.LevelWarning,
			Message: fmt.Sprintf("%d trips took significantly longer routes than necessary; review route planning", stats.InefficientRoutes),
		})
	}
	if stats.IrregularStops > 0 {
		recs = append(recs, models.Recommendation{
			Type:    models.RecommendationStopReduction,
			Level:   models.LevelWarning,
			Message: fmt.Sprintf("%d trips showed irregular stop patterns; check for unplanned idling", stats.IrregularStops),
		})
	}
	if stats.AverageSpeedKmH > 80 {
		recs = append(recs, models.Recommendation{
			Type:    models.RecommendationSpeedManagement,
			Level:   models.LevelWarning,
			Message: fmt.Sprintf("Average speed of %.0f km/h exceeds safe limits; reduce cruising speed", stats.AverageSpeedKmH),
		})
	}
	if stats.AverageSpeedKmH < 20 {
		recs = append(recs, models.Recommendation{
			Type:    models.RecommendationTrafficManagement,
			Level:   models.LevelInfo,
			Message: fmt.Sprintf("Average speed of %.0f km/h is unusually low; consider scheduling trips outside peak traffic", stats.AverageSpeedKmH),
		})
	}

	if len(recs) == 0 {
		recs = append(recs, models.Recommendation{
			Type:    models.RecommendationGeneral,
			Level:   models.LevelInfo,
			Message: "Driving patterns are within normal parameters",
		})
	}
	return recs
}

// clampScore rounds to the nearest integer and clamps to [0, 100].
func clampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(math.Round(score))
}
