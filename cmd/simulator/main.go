package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/uydev/fleet-budget-analytics/internal/geo"
	"github.com/uydev/fleet-budget-analytics/internal/models"
)

// Depot locations used as trip endpoints.
var depots = []models.Location{
	{Lat: 51.5074, Lon: -0.1278},  // London
	{Lat: 48.8566, Lon: 2.3522},   // Paris
	{Lat: 40.4168, Lon: -3.7038},  // Madrid
	{Lat: 52.5200, Lon: 13.4050},  // Berlin
	{Lat: 41.0082, Lon: 28.9784},  // Istanbul
	{Lat: 51.4816, Lon: -3.1791},  // Cardiff
	{Lat: 35.1856, Lon: 33.3823},  // Nicosia
}

var authToken string

func authorizedPost(url string, body *bytes.Buffer) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func jitter(base models.Location, deg float64) models.Location {
	return models.Location{
		Lat: base.Lat + (rand.Float64()*2-1)*deg,
		Lon: base.Lon + (rand.Float64()*2-1)*deg,
	}
}

// buildRoutePoints interpolates samples along the straight line between the
// endpoints, injecting stopClusters runs of near-identical coordinates so the
// stop detector has something to find.
func buildRoutePoints(start, end models.Location, startTime time.Time, samples, stopClusters int) []models.RoutePoint {
	points := make([]models.RoutePoint, 0, samples+stopClusters*8)
	ts := startTime

	clusterEvery := samples + 1
	if stopClusters > 0 {
		clusterEvery = samples / (stopClusters + 1)
	}

	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples-1)
		pos := models.Location{
			Lat: start.Lat + (end.Lat-start.Lat)*t,
			Lon: start.Lon + (end.Lon-start.Lon)*t,
		}
		pos = jitter(pos, 0.0005)
		points = append(points, models.RoutePoint{Lat: pos.Lat, Lon: pos.Lon, Timestamp: ts})
		ts = ts.Add(30 * time.Second)

		if stopClusters > 0 && i > 0 && i%clusterEvery == 0 {
			// 8 near-identical samples, then movement resumes.
			for j := 0; j < 8; j++ {
				points = append(points, models.RoutePoint{
					Lat:       pos.Lat + (rand.Float64()*2-1)*1e-5,
					Lon:       pos.Lon + (rand.Float64()*2-1)*1e-5,
					Timestamp: ts,
				})
				ts = ts.Add(30 * time.Second)
			}
			stopClusters--
		}
	}
	return points
}

// buildTrip produces one completed synthetic trip. Roughly a third of trips
// get an inflated traveled distance so the inefficiency check fires, and a
// third get enough stop clusters to trip the stop detector.
func buildTrip(driverID string, tripIndex int) models.Trip {
	startDepot := rand.Intn(len(depots))
	endDepot := (startDepot + 1 + rand.Intn(len(depots)-1)) % len(depots)
	start := jitter(depots[startDepot], 0.01)
	end := jitter(depots[endDepot], 0.01)
	direct := geo.DistanceKm(start.Lat, start.Lon, end.Lat, end.Lon)

	distance := direct * (1.05 + rand.Float64()*0.2)
	stopClusters := 0
	switch tripIndex % 3 {
	case 1:
		distance = direct * (1.6 + rand.Float64()*0.5) // inefficient detour
	case 2:
		stopClusters = 4 + rand.Intn(2)
	}

	speedKmH := 40 + rand.Float64()*40
	durationHours := distance / speedKmH
	startTime := time.Now().Add(-time.Duration(rand.Intn(720)) * time.Hour)
	endTime := startTime.Add(time.Duration(durationHours * float64(time.Hour)))

	routePoints := buildRoutePoints(start, end, startTime, 40, stopClusters)
	rawRoute, err := json.Marshal(routePoints)
	if err != nil {
		log.WithError(err).Warn("Failed to marshal route points")
	}

	return models.Trip{
		DriverID:      driverID,
		VehicleID:     fmt.Sprintf("vehicle-%d", rand.Intn(20)+1),
		StartTime:     startTime,
		EndTime:       &endTime,
		StartLocation: start,
		EndLocation:   &end,
		Distance:      distance,
		RoutePoints:   rawRoute,
	}
}

func sendTrip(apiURL string, trip models.Trip) error {
	data, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("failed to marshal trip: %w", err)
	}
	resp, err := authorizedPost(apiURL+"/trips", bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("failed to send trip: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("trip creation failed with status: %d", resp.StatusCode)
	}
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using process environment")
	}

	authToken = os.Getenv("SIM_AUTH_TOKEN")

	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}

	driverCount := 5
	if v := os.Getenv("SIM_DRIVERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			driverCount = n
		}
	}

	tripsPerDriver := 6
	if v := os.Getenv("SIM_TRIPS_PER_DRIVER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			tripsPerDriver = n
		}
	}

	log.WithFields(log.Fields{
		"api_url":          apiURL,
		"drivers":          driverCount,
		"trips_per_driver": tripsPerDriver,
	}).Info("Seeding synthetic trip logs")

	sent := 0
	for d := 1; d <= driverCount; d++ {
		driverID := fmt.Sprintf("driver-%d", d)
		for t := 0; t < tripsPerDriver; t++ {
			trip := buildTrip(driverID, t)
			if err := sendTrip(apiURL, trip); err != nil {
				log.WithError(err).WithField("driver_id", driverID).Error("Failed to send trip")
				continue
			}
			sent++
		}
		log.WithField("driver_id", driverID).Info("Seeded driver trips")
	}

	log.WithField("trips_sent", sent).Info("Trip seeding completed")
}
