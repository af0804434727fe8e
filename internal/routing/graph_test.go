package routing

import (
	"errors"
	"math"
	"testing"

	"github.com/sharmaakash12-2000/Delhi-Metro/internal/models"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/spatial"
)

func f64(v float64) *float64 { return &v }
func seq(v int) *int         { return &v }

func station(name string, lat, lon *float64, lines ...models.LineMembership) models.Station {
	return models.Station{Name: name, Latitude: lat, Longitude: lon, Lines: lines}
}

func on(line string, order int) models.LineMembership {
	return models.LineMembership{Line: line, SequenceOrder: seq(order)}
}

func TestBuildGraph(t *testing.T) {
	t.Run("EmptyStationTable", func(t *testing.T) {
		_, err := BuildGraph(nil, nil, DefaultParams())
		var die *DataIntegrityError
		if !errors.As(err, &die) {
			t.Fatalf("Expected DataIntegrityError, got %v", err)
		}
	})

	t.Run("NodesAndEdges", func(t *testing.T) {
		stations := []models.Station{
			station("A", f64(28.60), f64(77.20), on("Red", 1)),
			station("B", f64(28.62), f64(77.21), on("Red", 2), on("Blue", 2)),
			station("C", f64(28.64), f64(77.23), on("Blue", 3)),
		}
		edges := []models.Edge{
			{From: "A", To: "B", Line: "Red", TravelTimeMin: f64(5)},
			{From: "B", To: "C", Line: "Blue", TravelTimeMin: f64(3)},
		}
		g, err := BuildGraph(stations, edges, DefaultParams())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if g.NumStations() != 3 {
			t.Errorf("Expected 3 stations, got %d", g.NumStations())
		}
		if got := g.Stations(); got[0] != "A" || got[1] != "B" || got[2] != "C" {
			t.Errorf("Unexpected station order: %v", got)
		}
		e, ok := g.EdgeBetween("A", "B", "")
		if !ok || e.TimeMin != 5 || e.Line != "red" {
			t.Errorf("Unexpected edge A-B: %+v ok=%v", e, ok)
		}
		// Undirected: reverse direction exists too
		if _, ok := g.EdgeBetween("C", "B", ""); !ok {
			t.Error("Expected reverse edge C-B")
		}
	})

	t.Run("UnknownStationWarnAndInclude", func(t *testing.T) {
		stations := []models.Station{station("A", nil, nil, on("Red", 1))}
		edges := []models.Edge{{From: "A", To: "Ghost", Line: "Red", TravelTimeMin: f64(2)}}
		g, err := BuildGraph(stations, edges, DefaultParams())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !g.HasStation("Ghost") {
			t.Error("Expected unknown edge endpoint to be included as a node")
		}
		if len(g.Warnings()) == 0 {
			t.Error("Expected an integrity warning for the unknown station")
		}
	})

	t.Run("LineSequenceAndTerminals", func(t *testing.T) {
		stations := []models.Station{
			station("A", nil, nil, on("Red", 1)),
			station("B", nil, nil, on("Red", 2)),
			station("C", nil, nil, on("Red", 3)),
		}
		g, err := BuildGraph(stations, nil, DefaultParams())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		start, end, ok := g.Terminals("red")
		if !ok || start != "A" || end != "C" {
			t.Errorf("Expected terminals A..C, got %q..%q ok=%v", start, end, ok)
		}
		if got := g.LineStations("red"); len(got) != 3 || got[0] != "A" || got[2] != "C" {
			t.Errorf("Unexpected line order: %v", got)
		}
	})
}

func TestWeightResolution(t *testing.T) {
	params := DefaultParams()
	stations := []models.Station{
		station("A", f64(28.60), f64(77.20), on("Red", 1)),
		station("B", f64(28.70), f64(77.30), on("Red", 2)),
		station("NoCoord1", nil, nil, on("Red", 3)),
		station("NoCoord2", nil, nil, on("Red", 4)),
	}

	t.Run("ExplicitTimeWins", func(t *testing.T) {
		// A and B are far apart; the explicit 1 minute must win anyway
		edges := []models.Edge{{From: "A", To: "B", Line: "Red", TravelTimeMin: f64(1)}}
		g, err := BuildGraph(stations, edges, params)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if e, _ := g.EdgeBetween("A", "B", ""); e.TimeMin != 1 {
			t.Errorf("Expected explicit time 1, got %f", e.TimeMin)
		}
	})

	t.Run("SymmetricTableLookup", func(t *testing.T) {
		edges := []models.Edge{
			{From: "A", To: "B", Line: "Red"},
			{From: "B", To: "A", Line: "Red", TravelTimeMin: f64(4)},
		}
		g, err := BuildGraph(stations, edges, params)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if e, _ := g.EdgeBetween("A", "B", ""); e.TimeMin != 4 {
			t.Errorf("Expected time 4 from reversed row, got %f", e.TimeMin)
		}
	})

	t.Run("GeodesicFallback", func(t *testing.T) {
		edges := []models.Edge{{From: "A", To: "B", Line: "Red"}}
		g, err := BuildGraph(stations, edges, params)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := spatial.HaversineKm(28.60, 77.20, 28.70, 77.30) / params.AvgSpeedKmh * 60
		if e, _ := g.EdgeBetween("A", "B", ""); math.Abs(e.TimeMin-want) > 1e-9 {
			t.Errorf("Expected geodesic time %f, got %f", want, e.TimeMin)
		}
	})

	t.Run("DefaultFallback", func(t *testing.T) {
		edges := []models.Edge{{From: "NoCoord1", To: "NoCoord2", Line: "Red"}}
		g, err := BuildGraph(stations, edges, params)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if e, _ := g.EdgeBetween("NoCoord1", "NoCoord2", ""); e.TimeMin != params.DefaultEdgeTimeMin {
			t.Errorf("Expected default time %f, got %f", params.DefaultEdgeTimeMin, e.TimeMin)
		}
	})
}
