package analysis

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/uydev/fleet-budget-analytics/internal/audit"
	"github.com/uydev/fleet-budget-analytics/internal/db"
	"github.com/uydev/fleet-budget-analytics/internal/models"
)

// fuelBurnLPer100Km is the constant burn-rate model used to estimate fuel
// consumption from distance.
const fuelBurnLPer100Km = 10.0

// Orchestrator runs the route analysis over one or all drivers. It carries
// no state between requests; all data is fetched up front per driver.
type Orchestrator struct {
	trips db.TripCollection
	sink  audit.Sink
}

// NewOrchestrator creates a new analysis orchestrator.
func NewOrchestrator(trips db.TripCollection, sink audit.Sink) *Orchestrator {
	return &Orchestrator{trips: trips, sink: sink}
}

// AnalyzeDriverRoutes analyzes the requested driver, or every driver with at
// least one completed trip when driverID is empty. Drivers are analyzed
// concurrently; a failure on one driver excludes that driver from the result
// set but never aborts the batch.
func (o *Orchestrator) AnalyzeDriverRoutes(ctx context.Context, driverID string) ([]models.RouteAnalysisResult, error) {
	driverIDs := []string{driverID}
	if driverID == "" {
		ids, err := o.trips.DistinctDriverIDs(ctx)
		if err != nil {
			return nil, err
		}
		driverIDs = ids
	}

	perDriver := make([]*models.RouteAnalysisResult, len(driverIDs))
	var wg sync.WaitGroup
	for i, id := range driverIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			result, err := o.analyzeDriver(ctx, id)
			if err != nil {
				log.WithError(err).WithField("driver_id", id).Error("Driver analysis failed, excluding from batch")
				return
			}
			perDriver[i] = result
		}(i, id)
	}
	wg.Wait()

	results := make([]models.RouteAnalysisResult, 0, len(driverIDs))
	anomalies := 0
	for _, r := range perDriver {
		if r == nil {
			continue
		}
		results = append(results, *r)
		anomalies += len(r.Anomalies)
	}

	o.publishAudit(driverID, len(results), anomalies)
	return results, nil
}

// analyzeDriver loads a driver's completed trips, detects anomalies per trip,
// and scores the aggregate. A driver without completed trips yields nil.
func (o *Orchestrator) analyzeDriver(ctx context.Context, driverID string) (*models.RouteAnalysisResult, error) {
	trips, err := o.trips.FindCompletedByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if len(trips) == 0 {
		return nil, nil
	}

	stats := TripStats{TripsCount: len(trips)}
	var anomalies []models.Anomaly
	for i := range trips {
		trip := &trips[i]
		stats.TotalDistanceKm += trip.Distance
		stats.TotalDurationHours += trip.DurationHours()
		stats.TotalFuelEstimateL += trip.Distance / 100 * fuelBurnLPer100Km

		for _, a := range DetectAnomalies(trip) {
			switch a.Type {
			case models.AnomalyIrregularStops:
				stats.IrregularStops++
			case models.AnomalyInefficientRoute:
				stats.InefficientRoutes++
			}
			anomalies = append(anomalies, a)
		}
	}
	stats.Anomalies = anomalies
	if stats.TotalDurationHours > 0 {
		stats.AverageSpeedKmH = stats.TotalDistanceKm / stats.TotalDurationHours
	}

	performance, recommendations := ScoreDriver(stats)

	return &models.RouteAnalysisResult{
		DriverID:            driverID,
		TripsCount:          stats.TripsCount,
		TotalDistanceKm:     stats.TotalDistanceKm,
		TotalDurationHours:  stats.TotalDurationHours,
		AverageSpeedKmH:     stats.AverageSpeedKmH,
		TotalFuelEstimateL:  stats.TotalFuelEstimateL,
		IrregularStopsCount: stats.IrregularStops,
		InefficientRoutes:   stats.InefficientRoutes,
		CostSavingEstimate:  CostSavingEstimate(stats),
		Performance:         performance,
		Recommendations:     recommendations,
		Anomalies:           anomalies,
	}, nil
}

// publishAudit notifies the audit sink fire-and-forget. Sink failures are
// logged and never surface to the caller.
func (o *Orchestrator) publishAudit(requestedDriver string, driverCount, anomalyCount int) {
	event := audit.Event{
		Type:            "route_analysis_completed",
		Timestamp:       time.Now(),
		RequestedDriver: requestedDriver,
		DriversAnalyzed: driverCount,
		AnomaliesFound:  anomalyCount,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := o.sink.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish analysis audit event")
		}
	}()
}
