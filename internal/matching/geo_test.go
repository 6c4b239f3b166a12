package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmParisLondon(t *testing.T) {
	// Paris → London is a well-known reference pair.
	d := DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 343.5, d, 1.0)
}

func TestDistanceKmSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{48.8566, 2.3522, 51.5074, -0.1278},
		{0, 0, 0, 0},
		{-33.8688, 151.2093, 40.7128, -74.0060},
		{89.9, 10, -89.9, -170},
	}

	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1], p[2], p[3])
		ba := DistanceKm(p[2], p[3], p[0], p[1])
		assert.Equal(t, ab, ba)
	}
}

func TestDistanceKmCoincidentPoints(t *testing.T) {
	d := DistanceKm(48.8566, 2.3522, 48.8566, 2.3522)
	assert.False(t, math.IsNaN(d))
	assert.Equal(t, 0.0, d)
}

func TestDistanceKmAntipodalClamp(t *testing.T) {
	// Antipodal points push the cosine argument to the edge of its
	// domain; without the clamp this is where NaN appears.
	d := DistanceKm(48.8566, 2.3522, -48.8566, -177.6478)
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*earthRadiusKm, d, 1.0)
}

func TestDistanceKmNeverOutOfRange(t *testing.T) {
	coords := []float64{-90, -45.5, 0, 13.37, 45.5, 90}
	lons := []float64{-180, -90, 0, 2.3522, 90, 180}

	for _, lat1 := range coords {
		for _, lon1 := range lons {
			for _, lat2 := range coords {
				for _, lon2 := range lons {
					d := DistanceKm(lat1, lon1, lat2, lon2)
					assert.False(t, math.IsNaN(d))
					assert.GreaterOrEqual(t, d, 0.0)
					assert.LessOrEqual(t, d, math.Pi*earthRadiusKm+1)
				}
			}
		}
	}
}

func TestProfileDistanceUndefinedWithoutCoordinates(t *testing.T) {
	lat, lon := 48.8566, 2.3522
	located := &Profile{ID: 1, Latitude: &lat, Longitude: &lon}
	nowhere := &Profile{ID: 2}

	_, defined := ProfileDistance(located, nowhere)
	assert.False(t, defined)

	_, defined = ProfileDistance(nowhere, located)
	assert.False(t, defined)

	d, defined := ProfileDistance(located, located)
	assert.True(t, defined)
	assert.Equal(t, 0.0, d)
}
