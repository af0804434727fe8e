package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeParams(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routing.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write params file: %v", err)
	}
	return path
}

func TestLoadRoutingParams(t *testing.T) {
	t.Run("MissingFileUsesDefaults", func(t *testing.T) {
		params, err := LoadRoutingParams(filepath.Join(t.TempDir(), "absent.yml"))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if params.AvgSpeedKmh != 80 || params.MaxFare != 64 {
			t.Errorf("Expected defaults, got %+v", params)
		}
		if len(params.FareBrackets) != 5 {
			t.Errorf("Expected 5 default brackets, got %d", len(params.FareBrackets))
		}
	})

	t.Run("OverlayKeepsUnsetDefaults", func(t *testing.T) {
		path := writeParams(t, "avg_speed_kmh: 60\ninterchange_time_min: 3\n")
		params, err := LoadRoutingParams(path)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if params.AvgSpeedKmh != 60 || params.InterchangeTimeMin != 3 {
			t.Errorf("Overrides not applied: %+v", params)
		}
		if params.DwellTimeMin != 0.2 || params.DefaultEdgeTimeMin != 2 {
			t.Errorf("Defaults lost: %+v", params)
		}
	})

	t.Run("PlatformLinesNormalized", func(t *testing.T) {
		path := writeParams(t, "platforms:\n  \" Aqua \":\n    up: 3\n    down: 4\n")
		params, err := LoadRoutingParams(path)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		pair, ok := params.Platforms["aqua"]
		if !ok || pair.Up != 3 || pair.Down != 4 {
			t.Errorf("Expected normalized aqua platforms, got %+v", params.Platforms)
		}
	})

	t.Run("RejectsUnsortedBrackets", func(t *testing.T) {
		path := writeParams(t, "fare_brackets:\n  - up_to_km: 5\n    fare: 21\n  - up_to_km: 2\n    fare: 11\n")
		if _, err := LoadRoutingParams(path); err == nil {
			t.Error("Expected error for unsorted brackets")
		}
	})

	t.Run("RejectsNonIncreasingFares", func(t *testing.T) {
		path := writeParams(t, "fare_brackets:\n  - up_to_km: 2\n    fare: 21\n  - up_to_km: 5\n    fare: 21\n")
		if _, err := LoadRoutingParams(path); err == nil {
			t.Error("Expected error for non-increasing fares")
		}
	})

	t.Run("RejectsNegativeSpeed", func(t *testing.T) {
		path := writeParams(t, "avg_speed_kmh: -5\n")
		if _, err := LoadRoutingParams(path); err == nil {
			t.Error("Expected validation error for negative speed")
		}
	})
}
