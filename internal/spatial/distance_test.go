package spatial

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	// Rajiv Chowk and Kashmere Gate are roughly 4.3 km apart
	const (
		rcLat, rcLon = 28.6328, 77.2197
		kgLat, kgLon = 28.6675, 77.2285
	)

	t.Run("KnownPair", func(t *testing.T) {
		d := HaversineKm(rcLat, rcLon, kgLat, kgLon)
		if d < 3.5 || d > 5.0 {
			t.Errorf("Expected roughly 4.3 km, got %.3f km", d)
		}
	})

	t.Run("Symmetric", func(t *testing.T) {
		d1 := HaversineDistance(rcLat, rcLon, kgLat, kgLon)
		d2 := HaversineDistance(kgLat, kgLon, rcLat, rcLon)
		if math.Abs(d1-d2) > 1e-6 {
			t.Errorf("Distance not symmetric: %.6f vs %.6f", d1, d2)
		}
	})

	t.Run("ZeroForSamePoint", func(t *testing.T) {
		if d := HaversineDistance(rcLat, rcLon, rcLat, rcLon); d != 0 {
			t.Errorf("Expected 0 for identical points, got %f", d)
		}
	})

	t.Run("MetersMatchKm", func(t *testing.T) {
		m := HaversineDistance(rcLat, rcLon, kgLat, kgLon)
		km := HaversineKm(rcLat, rcLon, kgLat, kgLon)
		if math.Abs(m/1000.0-km) > 1e-9 {
			t.Errorf("Meter/km mismatch: %f vs %f", m, km)
		}
	})
}
