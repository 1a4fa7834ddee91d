package analysis

import (
	"encoding/json"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/uydev/fleet-budget-analytics/internal/geo"
	"github.com/uydev/fleet-budget-analytics/internal/models"
)

const (
	// minRouteSamples is the minimum number of GPS samples a route must carry
	// before anomaly detection runs at all.
	minRouteSamples = 11

	// stationaryThresholdDeg is the per-axis coordinate delta (degrees, about
	// 11 m) under which two consecutive samples count as stationary.
	stationaryThresholdDeg = 1e-4

	// stopRunLength is the consecutive-stationary-sample count a run must
	// exceed before it is counted as one potential stop.
	stopRunLength = 5

	// maxNormalStops is the per-trip stop count above which an
	// irregular_stops anomaly is emitted.
	maxNormalStops = 3

	// minEfficiencyRatio is the direct-distance / traveled-distance ratio
	// under which a route is flagged as inefficient.
	minEfficiencyRatio = 0.7
)

// DetectAnomalies inspects a single completed trip and returns zero or more
// anomalies. It never fails: trips without usable telemetry simply contribute
// no anomalies.
func DetectAnomalies(trip *models.Trip) []models.Anomaly {
	points, ok := parseRoutePoints(trip)
	if !ok || len(points) < minRouteSamples {
		return nil
	}

	var anomalies []models.Anomaly
	if stops := countPotentialStops(points); stops > maxNormalStops {
		anomalies = append(anomalies, models.Anomaly{
			TripID:    trip.ID,
			Type:      models.AnomalyIrregularStops,
			Severity:  models.SeverityMedium,
			Details:   fmt.Sprintf("detected %d potential irregular stops during trip", stops),
			Timestamp: trip.StartTime,
			Location:  &models.Location{Lat: trip.StartLocation.Lat, Lon: trip.StartLocation.Lon},
		})
	}

	if ratio := efficiencyRatio(trip); ratio < minEfficiencyRatio {
		anomalies = append(anomalies, models.Anomaly{
			TripID:    trip.ID,
			Type:      models.AnomalyInefficientRoute,
			Severity:  models.SeverityMedium,
			Details:   fmt.Sprintf("route efficiency at %.0f%% of direct path", ratio*100),
			Timestamp: trip.StartTime,
		})
	}

	return anomalies
}

// parseRoutePoints decodes the raw route payload. Malformed data is logged
// and treated as "no telemetry" rather than an error.
func parseRoutePoints(trip *models.Trip) ([]models.RoutePoint, bool) {
	if len(trip.RoutePoints) == 0 {
		return nil, false
	}
	var points []models.RoutePoint
	if err := json.Unmarshal(trip.RoutePoints, &points); err != nil {
		log.WithError(err).WithField("trip_id", trip.ID.Hex()).Warn("Malformed route points, skipping anomaly detection")
		return nil, false
	}
	return points, true
}

// countPotentialStops walks the ordered samples and counts runs of more than
// stopRunLength consecutive near-identical coordinates. A run only counts
// once movement resumes, so a single long stationary stretch is one stop.
func countPotentialStops(points []models.RoutePoint) int {
	stops := 0
	stationary := 0
	for i := 1; i < len(points); i++ {
		dLat := math.Abs(points[i].Lat - points[i-1].Lat)
		dLon := math.Abs(points[i].Lon - points[i-1].Lon)
		if dLat < stationaryThresholdDeg && dLon < stationaryThresholdDeg {
			stationary++
			continue
		}
		if stationary > stopRunLength {
			stops++
		}
		stationary = 0
	}
	return stops
}

// efficiencyRatio compares the direct geodesic distance against the traveled
// distance. Zero traveled distance yields 1 so no anomaly is emitted.
func efficiencyRatio(trip *models.Trip) float64 {
	if trip.Distance == 0 {
		return 1
	}
	var endLat, endLon float64
	if trip.EndLocation != nil {
		endLat = trip.EndLocation.Lat
		endLon = trip.EndLocation.Lon
	}
	direct := geo.DistanceKm(trip.StartLocation.Lat, trip.StartLocation.Lon, endLat, endLon)
	return direct / trip.Distance
}
