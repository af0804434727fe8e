package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sharmaakash12-2000/Delhi-Metro/internal/routing"
)

func TestParseStationLines(t *testing.T) {
	t.Run("VariantHeaders", func(t *testing.T) {
		csv := "Station Name, Line , Sequence Order\nRajiv Chowk,Yellow,12\nRajiv Chowk,Blue,20\n"
		rows, err := parseStationLines(strings.NewReader(csv))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("Expected 2 rows, got %d", len(rows))
		}
		if rows[0].station != "Rajiv Chowk" || rows[0].line != "Yellow" {
			t.Errorf("Unexpected row: %+v", rows[0])
		}
		if rows[0].sequence == nil || *rows[0].sequence != 12 {
			t.Errorf("Expected sequence 12, got %v", rows[0].sequence)
		}
	})

	t.Run("MissingSequenceDegrades", func(t *testing.T) {
		csv := "station,line,sequence_order\nSaket,Yellow,\n"
		rows, err := parseStationLines(strings.NewReader(csv))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if rows[0].sequence != nil {
			t.Errorf("Expected nil sequence, got %v", *rows[0].sequence)
		}
	})

	t.Run("MissingRequiredColumn", func(t *testing.T) {
		_, err := parseStationLines(strings.NewReader("station\nSaket\n"))
		var die *routing.DataIntegrityError
		if !errors.As(err, &die) {
			t.Fatalf("Expected DataIntegrityError, got %v", err)
		}
	})
}

func TestParseEdges(t *testing.T) {
	t.Run("VariantHeaders", func(t *testing.T) {
		csv := "From,To,Line Name,Travel Time Min\nSaket,Malviya Nagar,Yellow,2.5\nMalviya Nagar,Hauz Khas,Yellow,\n"
		edges, err := parseEdges(strings.NewReader(csv))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(edges) != 2 {
			t.Fatalf("Expected 2 edges, got %d", len(edges))
		}
		if edges[0].From != "Saket" || edges[0].To != "Malviya Nagar" {
			t.Errorf("Unexpected edge: %+v", edges[0])
		}
		if edges[0].TravelTimeMin == nil || *edges[0].TravelTimeMin != 2.5 {
			t.Errorf("Expected travel time 2.5, got %v", edges[0].TravelTimeMin)
		}
		if edges[1].TravelTimeMin != nil {
			t.Errorf("Expected nil travel time, got %v", *edges[1].TravelTimeMin)
		}
	})

	t.Run("SourceDestinationAliases", func(t *testing.T) {
		csv := "source,destination,line\nA,B,Red\n"
		edges, err := parseEdges(strings.NewReader(csv))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if edges[0].From != "A" || edges[0].To != "B" || edges[0].Line != "Red" {
			t.Errorf("Aliases not applied: %+v", edges[0])
		}
	})

	t.Run("MissingRequiredColumn", func(t *testing.T) {
		_, err := parseEdges(strings.NewReader("from,line\nA,Red\n"))
		var die *routing.DataIntegrityError
		if !errors.As(err, &die) {
			t.Fatalf("Expected DataIntegrityError, got %v", err)
		}
	})
}

func TestParseMaster(t *testing.T) {
	csv := "Station Name,Lat,Lng\nSaket,28.5245,77.2066\nSaket,0,0\nBroken,abc,def\n"
	coords, err := parseMaster(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	c, ok := coords["Saket"]
	if !ok || c.lat != 28.5245 {
		t.Errorf("Expected first Saket row to win, got %+v", c)
	}
	if _, ok := coords["Broken"]; ok {
		t.Error("Rows with unparseable coordinates must be skipped")
	}
}

func TestLoadDir(t *testing.T) {
	writeFiles := func(t *testing.T, files map[string]string) string {
		t.Helper()
		dir := t.TempDir()
		for name, content := range files {
			if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
				t.Fatalf("Failed to write %s: %v", name, err)
			}
		}
		return dir
	}

	t.Run("MergesMasterCoordinates", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{
			StationLinesFile:  "station_name,line_name,sequence_order\nSaket,Yellow,1\nHauz Khas,Yellow,2\n",
			EdgesFile:         "from_station,to_station,line_name,travel_time_min\nSaket,Hauz Khas,Yellow,3\n",
			StationMasterFile: "station_name,latitude,longitude\nSaket,28.5245,77.2066\n",
		})
		res, err := LoadDir(dir)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(res.Stations) != 2 || len(res.Edges) != 1 {
			t.Fatalf("Unexpected table sizes: %d stations, %d edges", len(res.Stations), len(res.Edges))
		}
		if !res.Stations[0].HasCoordinates() {
			t.Error("Expected Saket to receive master coordinates")
		}
		if res.Stations[1].HasCoordinates() {
			t.Error("Hauz Khas has no master row, coordinates must stay absent")
		}
		if len(res.Warnings) != 0 {
			t.Errorf("Unexpected warnings: %v", res.Warnings)
		}
	})

	t.Run("MasterFileOptional", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{
			StationLinesFile: "station_name,line_name,sequence_order\nSaket,Yellow,1\n",
			EdgesFile:        "from_station,to_station,line_name\nSaket,Hauz Khas,Yellow\n",
		})
		res, err := LoadDir(dir)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		// Hauz Khas appears only in the edge table
		if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "Hauz Khas") {
			t.Errorf("Expected a missing-station warning for Hauz Khas, got %v", res.Warnings)
		}
	})

	t.Run("RequiredFileAbsent", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{
			StationLinesFile: "station_name,line_name\nSaket,Yellow\n",
		})
		if _, err := LoadDir(dir); err == nil {
			t.Error("Expected error when the edge table is absent")
		}
	})
}
