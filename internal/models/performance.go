package models

// DriverPerformance holds the derived driver scores, each an integer in [0, 100].
// Scores are recomputed in full on every analysis run; there is no incremental state.
type DriverPerformance struct {
	SafetyScore      int `json:"safety_score" bson:"safety_score"`
	EfficiencyScore  int `json:"efficiency_score" bson:"efficiency_score"`
	ConsistencyScore int `json:"consistency_score" bson:"consistency_score"`
	OverallScore     int `json:"overall_score" bson:"overall_score"`
}

// RecommendationType identifies the action a recommendation suggests.
type RecommendationType string

const (
	RecommendationRouteOptimization RecommendationType = "route_optimization"
	RecommendationStopReduction     RecommendationType = "stop_reduction"
	RecommendationSpeedManagement   RecommendationType = "speed_management"
	RecommendationTrafficManagement RecommendationType = "traffic_management"
	RecommendationNoData            RecommendationType = "no_data"
	RecommendationGeneral           RecommendationType = "general"
)

// RecommendationLevel is the urgency attached to a recommendation.
type RecommendationLevel string

const (
	LevelWarning RecommendationLevel = "warning"
	LevelInfo    RecommendationLevel = "info"
)

// Recommendation is a threshold-driven suggestion produced by the scorer.
type Recommendation struct {
	Type    RecommendationType  `json:"type" bson:"type"`
	Level   RecommendationLevel `json:"level" bson:"level"`
	Message string              `json:"message" bson:"message"`
}

// RouteAnalysisResult aggregates one driver's trip statistics, scores,
// anomalies and recommendations for a single analysis run. Results are
// ephemeral; the core does not persist them.
type RouteAnalysisResult struct {
	DriverID              string            `json:"driver_id" bson:"driver_id"`
	TripsCount            int               `json:"trips_count" bson:"trips_count"`
	TotalDistanceKm       float64           `json:"total_distance_km" bson:"total_distance_km"`
	TotalDurationHours    float64           `json:"total_duration_hours" bson:"total_duration_hours"`
	AverageSpeedKmH       float64           `json:"average_speed_kmh" bson:"average_speed_kmh"`
	TotalFuelEstimateL    float64           `json:"total_fuel_estimate_l" bson:"total_fuel_estimate_l"`
	IrregularStopsCount   int               `json:"irregular_stops_count" bson:"irregular_stops_count"`
	InefficientRoutes     int               `json:"inefficient_routes_count" bson:"inefficient_routes_count"`
	CostSavingEstimate    float64           `json:"cost_saving_estimate" bson:"cost_saving_estimate"` // in USD
	Performance           DriverPerformance `json:"performance" bson:"performance"`
	Recommendations       []Recommendation  `json:"recommendations" bson:"recommendations"`
	Anomalies             []Anomaly         `json:"anomalies" bson:"anomalies"`
}
