// Package loader ingests the reference CSV files and writes the canonical
// station/edge tables into sqlite. Header-spelling variants are reconciled
// here, so the rest of the system only ever sees the canonical schema.
package loader

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sharmaakash12-2000/Delhi-Metro/internal/database"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/models"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/routing"
)

// Reference file names inside the data directory
const (
	StationLinesFile  = "station_line_mapping.csv"
	EdgesFile         = "edges_table.csv"
	StationMasterFile = "station_master.csv"
)

// Header aliases seen in the wild, keyed by lowercased/trimmed spelling
var (
	stationLineAliases = map[string]string{
		"station":        "station_name",
		"station name":   "station_name",
		"station_name":   "station_name",
		"line":           "line_name",
		"line name":      "line_name",
		"line_name":      "line_name",
		"sequence order": "sequence_order",
		"sequence_order": "sequence_order",
	}
	masterAliases = map[string]string{
		"station":      "station_name",
		"station name": "station_name",
		"station_name": "station_name",
		"lat":          "latitude",
		"latitude":     "latitude",
		"lon":          "longitude",
		"lng":          "longitude",
		"longitude":    "longitude",
	}
	edgeAliases = map[string]string{
		"from":            "from_station",
		"source":          "from_station",
		"from_station":    "from_station",
		"to":              "to_station",
		"destination":     "to_station",
		"to_station":      "to_station",
		"line":            "line_name",
		"line name":       "line_name",
		"line_name":       "line_name",
		"travel time min": "travel_time_min",
		"travel_time_min": "travel_time_min",
	}
)

type coordinate struct {
	lat float64
	lon float64
}

type membershipRow struct {
	station  string
	line     string
	sequence *int
}

// Result holds the normalized reference tables plus the integrity warnings
// collected while reconciling them.
type Result struct {
	Stations []models.Station
	Edges    []models.Edge
	Warnings []string
}

// LoadDir reads the reference CSVs from dir. The station-line mapping and
// the edge table are required; the station master (coordinates) is
// optional. The two required files are parsed concurrently.
func LoadDir(dir string) (*Result, error) {
	var (
		memberships []membershipRow
		edges       []models.Edge
		coords      map[string]coordinate
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		f, err := os.Open(filepath.Join(dir, StationLinesFile))
		if err != nil {
			return fmt.Errorf("%s: %w", StationLinesFile, err)
		}
		defer f.Close()
		memberships, err = parseStationLines(f)
		return err
	})
	g.Go(func() error {
		f, err := os.Open(filepath.Join(dir, EdgesFile))
		if err != nil {
			return fmt.Errorf("%s: %w", EdgesFile, err)
		}
		defer f.Close()
		edges, err = parseEdges(f)
		return err
	})
	g.Go(func() error {
		f, err := os.Open(filepath.Join(dir, StationMasterFile))
		if os.IsNotExist(err) {
			return nil // optional file
		}
		if err != nil {
			return fmt.Errorf("%s: %w", StationMasterFile, err)
		}
		defer f.Close()
		coords, err = parseMaster(f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return assemble(memberships, edges, coords), nil
}

// assemble merges line memberships and master coordinates into one station
// table and cross-checks the edge table against it.
func assemble(memberships []membershipRow, edges []models.Edge, coords map[string]coordinate) *Result {
	res := &Result{Edges: edges}

	byName := make(map[string]*models.Station)
	order := make([]string, 0)
	for _, m := range memberships {
		s, ok := byName[m.station]
		if !ok {
			s = &models.Station{Name: m.station}
			if c, hasCoord := coords[m.station]; hasCoord {
				lat, lon := c.lat, c.lon
				s.Latitude = &lat
				s.Longitude = &lon
			}
			byName[m.station] = s
			order = append(order, m.station)
		}
		s.Lines = append(s.Lines, models.LineMembership{Line: m.line, SequenceOrder: m.sequence})
	}
	for _, name := range order {
		res.Stations = append(res.Stations, *byName[name])
	}

	// Stations referenced by edges but absent from the mapping file
	missing := make(map[string]bool)
	for _, e := range edges {
		for _, name := range []string{e.From, e.To} {
			if name != "" && byName[name] == nil {
				missing[name] = true
			}
		}
	}
	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"stations in %s but missing from %s: %s",
			EdgesFile, StationLinesFile, strings.Join(names, ", ")))
	}

	return res
}

func parseStationLines(r io.Reader) ([]membershipRow, error) {
	header, rows, err := readCSV(r, stationLineAliases)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(header, StationLinesFile, "station_name", "line_name"); err != nil {
		return nil, err
	}

	var out []membershipRow
	for _, rec := range rows {
		row := membershipRow{
			station: field(rec, header, "station_name"),
			line:    field(rec, header, "line_name"),
		}
		if row.station == "" {
			continue
		}
		if v, err := strconv.Atoi(field(rec, header, "sequence_order")); err == nil {
			row.sequence = &v
		}
		out = append(out, row)
	}
	return out, nil
}

func parseEdges(r io.Reader) ([]models.Edge, error) {
	header, rows, err := readCSV(r, edgeAliases)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(header, EdgesFile, "from_station", "to_station", "line_name"); err != nil {
		return nil, err
	}

	var out []models.Edge
	for _, rec := range rows {
		e := models.Edge{
			From: field(rec, header, "from_station"),
			To:   field(rec, header, "to_station"),
			Line: field(rec, header, "line_name"),
		}
		if e.From == "" || e.To == "" {
			continue
		}
		if v, err := strconv.ParseFloat(field(rec, header, "travel_time_min"), 64); err == nil {
			e.TravelTimeMin = &v
		}
		out = append(out, e)
	}
	return out, nil
}

func parseMaster(r io.Reader) (map[string]coordinate, error) {
	header, rows, err := readCSV(r, masterAliases)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(header, StationMasterFile, "station_name"); err != nil {
		return nil, err
	}

	out := make(map[string]coordinate)
	for _, rec := range rows {
		name := field(rec, header, "station_name")
		if name == "" {
			continue
		}
		if _, dup := out[name]; dup {
			continue // first row wins, as with drop_duplicates on the source
		}
		lat, latErr := strconv.ParseFloat(field(rec, header, "latitude"), 64)
		lon, lonErr := strconv.ParseFloat(field(rec, header, "longitude"), 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		out[name] = coordinate{lat: lat, lon: lon}
	}
	return out, nil
}

// readCSV reads a whole CSV, normalizing header names through the alias map
func readCSV(r io.Reader, aliases map[string]string) (map[string]int, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	raw, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil, &routing.DataIntegrityError{Reason: "csv file is empty"}
	}

	header := make(map[string]int)
	for i, col := range raw[0] {
		key := strings.ToLower(strings.TrimSpace(col))
		if canonical, ok := aliases[key]; ok {
			key = canonical
		}
		if _, taken := header[key]; !taken {
			header[key] = i
		}
	}
	return header, raw[1:], nil
}

func requireColumns(header map[string]int, file string, cols ...string) error {
	for _, col := range cols {
		if _, ok := header[col]; !ok {
			return &routing.DataIntegrityError{
				Reason: fmt.Sprintf("%s is missing required column %q", file, col),
			}
		}
	}
	return nil
}

func field(rec []string, header map[string]int, col string) string {
	idx, ok := header[col]
	if !ok || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

var importMu sync.Mutex

// Import replaces the reference tables in the database with the loaded
// result. Concurrent imports are serialized; each import is one
// transaction, so readers never observe a half-replaced table set.
func Import(db *sql.DB, res *Result) error {
	importMu.Lock()
	defer importMu.Unlock()

	return database.Transaction(db, func(tx *sql.Tx) error {
		for _, table := range []string{"stations", "station_lines", "edges"} {
			if _, err := tx.Exec("DELETE FROM " + table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		stationStmt, err := tx.Prepare("INSERT INTO stations (name, latitude, longitude) VALUES (?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare station insert: %w", err)
		}
		defer stationStmt.Close()
		lineStmt, err := tx.Prepare("INSERT OR IGNORE INTO station_lines (station_name, line_name, sequence_order) VALUES (?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare membership insert: %w", err)
		}
		defer lineStmt.Close()
		edgeStmt, err := tx.Prepare("INSERT INTO edges (from_station, to_station, line_name, travel_time_min) VALUES (?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare edge insert: %w", err)
		}
		defer edgeStmt.Close()

		for _, s := range res.Stations {
			if _, err := stationStmt.Exec(s.Name, nullFloat(s.Latitude), nullFloat(s.Longitude)); err != nil {
				return fmt.Errorf("failed to insert station %q: %w", s.Name, err)
			}
			for _, m := range s.Lines {
				if _, err := lineStmt.Exec(s.Name, m.Line, nullInt(m.SequenceOrder)); err != nil {
					return fmt.Errorf("failed to insert membership %q/%q: %w", s.Name, m.Line, err)
				}
			}
		}
		for _, e := range res.Edges {
			if _, err := edgeStmt.Exec(e.From, e.To, e.Line, nullFloat(e.TravelTimeMin)); err != nil {
				return fmt.Errorf("failed to insert edge %q-%q: %w", e.From, e.To, err)
			}
		}
		return nil
	})
}

func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
