package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/uydev/fleet-budget-analytics/internal/analysis"
	"github.com/uydev/fleet-budget-analytics/internal/db"
	"github.com/uydev/fleet-budget-analytics/internal/forecast"
	"github.com/uydev/fleet-budget-analytics/internal/models"
)

// historyMonths is how many trailing months of consumption history feed the
// category split.
const historyMonths = 12

// AnalyticsHandler serves the route analysis and budget forecast endpoints.
type AnalyticsHandler struct {
	orchestrator *analysis.Orchestrator
	trips        db.TripCollection
	predictions  db.PredictionCollection
	consumption  db.ConsumptionCollection
	waste        db.WasteCollection

	// now is swapped out in tests for deterministic forecast months.
	now func() time.Time
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(
	orchestrator *analysis.Orchestrator,
	trips db.TripCollection,
	predictions db.PredictionCollection,
	consumption db.ConsumptionCollection,
	waste db.WasteCollection,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		orchestrator: orchestrator,
		trips:        trips,
		predictions:  predictions,
		consumption:  consumption,
		waste:        waste,
		now:          time.Now,
	}
}

// Routes handles GET /api/analytics/routes[?driver_id=...]. Without a
// driver_id every driver with at least one completed trip is analyzed.
func (h *AnalyticsHandler) Routes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	driverID := r.URL.Query().Get("driver_id")
	results, err := h.orchestrator.AnalyzeDriverRoutes(r.Context(), driverID)
	if err != nil {
		log.WithError(err).Error("Route analysis failed")
		http.Error(w, "Failed to analyze routes", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []models.RouteAnalysisResult{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// Forecast handles GET /api/analytics/forecast and returns the six-month
// category forecast, or an empty array when predictions or history are missing.
func (h *AnalyticsHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	predictions, err := h.predictions.FindPredictions(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load budget predictions")
		http.Error(w, "Failed to load predictions", http.StatusInternalServerError)
		return
	}

	historical, err := h.consumption.FindRecentMonths(r.Context(), historyMonths)
	if err != nil {
		log.WithError(err).Error("Failed to load consumption history")
		http.Error(w, "Failed to load consumption history", http.StatusInternalServerError)
		return
	}

	forecasts := forecast.BuildForecast(predictions, historical, h.now())
	if forecasts == nil {
		forecasts = []models.CategoryForecast{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(forecasts)
}

// Waste handles GET /api/analytics/waste?view=monthly|daily.
func (h *AnalyticsHandler) Waste(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view := r.URL.Query().Get("view")
	if view == "" {
		view = models.WasteViewMonthly
	}
	if view != models.WasteViewMonthly && view != models.WasteViewDaily {
		http.Error(w, "Invalid view mode", http.StatusBadRequest)
		return
	}

	historical, err := h.waste.FindHistoricalCosts(r.Context(), view)
	if err != nil {
		log.WithError(err).Error("Failed to load historical waste costs")
		http.Error(w, "Failed to load waste costs", http.StatusInternalServerError)
		return
	}

	var forecastCosts []models.WasteCost
	if view == models.WasteViewMonthly {
		forecastCosts, err = h.waste.FindForecastCosts(r.Context())
		if err != nil {
			log.WithError(err).Error("Failed to load forecast waste costs")
			http.Error(w, "Failed to load waste costs", http.StatusInternalServerError)
			return
		}
	}

	points := forecast.AggregateWasteCosts(historical, forecastCosts, view)
	if points == nil {
		points = []models.WasteCategoryPoint{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(points)
}

// CreateTrip handles POST /api/trips, the ingestion endpoint the simulator
// and the dashboard's trip forms write through.
func (h *AnalyticsHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var trip models.Trip
	if err := json.Unmarshal(body, &trip); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if trip.DriverID == "" {
		http.Error(w, "driver_id is required", http.StatusBadRequest)
		return
	}
	if trip.Distance < 0 {
		http.Error(w, "distance must not be negative", http.StatusBadRequest)
		return
	}
	if trip.EndTime != nil && trip.EndTime.Before(trip.StartTime) {
		http.Error(w, "end_time must not precede start_time", http.StatusBadRequest)
		return
	}

	if err := h.trips.InsertTrip(r.Context(), trip); err != nil {
		log.WithError(err).Error("Failed to insert trip")
		http.Error(w, "Failed to create trip", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Trip created"})
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
