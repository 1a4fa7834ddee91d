package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/uydev/fleet-budget-analytics/internal/analysis"
	"github.com/uydev/fleet-budget-analytics/internal/audit"
	"github.com/uydev/fleet-budget-analytics/internal/auth"
	"github.com/uydev/fleet-budget-analytics/internal/db"
	"github.com/uydev/fleet-budget-analytics/internal/handlers"
	"github.com/uydev/fleet-budget-analytics/internal/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using process environment")
	}

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	log.Info("Connected to MongoDB")

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "resource_dashboard"
	}
	database := client.Database(dbName)

	trips := &db.MongoTripCollection{Collection: database.Collection("trips")}
	predictions := &db.MongoPredictionCollection{Collection: database.Collection("budget_predictions")}
	consumption := &db.MongoConsumptionCollection{Collection: database.Collection("monthly_consumption")}
	waste := &db.MongoWasteCollection{
		Historical: database.Collection("waste_costs"),
		Forecast:   database.Collection("waste_cost_forecasts"),
	}

	sink := buildAuditSink()
	defer sink.Close()

	orchestrator := analysis.NewOrchestrator(trips, sink)
	analyticsHandler := handlers.NewAnalyticsHandler(orchestrator, trips, predictions, consumption, waste)

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to create auth service")
	}
	authMiddleware := middleware.NewAuthMiddleware(authService)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/analytics/routes", analyticsHandler.Routes)
	mux.HandleFunc("/api/analytics/forecast", analyticsHandler.Forecast)
	mux.HandleFunc("/api/analytics/waste", analyticsHandler.Waste)
	mux.HandleFunc("/api/trips", analyticsHandler.CreateTrip)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("Fleet analytics API listening")
	if err := http.ListenAndServe(":"+port, authMiddleware.Authenticate(mux)); err != nil {
		log.WithError(err).Fatal("HTTP server failed")
	}
}

// buildAuditSink wires the MQTT audit sink when a broker is configured and
// falls back to a no-op sink otherwise. Audit is best-effort by design.
func buildAuditSink() audit.Sink {
	brokerURL := os.Getenv("MQTT_BROKER_URL")
	if brokerURL == "" {
		log.Info("MQTT_BROKER_URL not set, audit events disabled")
		return audit.NopSink{}
	}

	clientID := os.Getenv("MQTT_CLIENT_ID")
	if clientID == "" {
		clientID = "fleet-budget-analytics"
	}
	topic := os.Getenv("AUDIT_TOPIC")
	if topic == "" {
		topic = "analytics/audit"
	}

	sink, err := audit.NewMQTTSink(brokerURL, clientID, topic)
	if err != nil {
		log.WithError(err).Warn("Failed to connect audit sink, audit events disabled")
		return audit.NopSink{}
	}
	log.WithField("topic", topic).Info("Audit sink connected")
	return sink
}
