package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{51.5074, -0.1278},
		{-33.8688, 151.2093},
		{89.9, 179.9},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, DistanceKm(p[0], p[1], p[0], p[1]))
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	d1 := DistanceKm(51.5074, -0.1278, 48.8566, 2.3522)
	d2 := DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
	assert.Equal(t, d1, d2)
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// London to Paris is roughly 344 km.
	d := DistanceKm(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 344, d, 5)
}

func TestDistanceKm_NaNPropagation(t *testing.T) {
	assert.True(t, math.IsNaN(DistanceKm(math.NaN(), 0, 0, 0)))
}
