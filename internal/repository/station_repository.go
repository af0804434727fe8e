package repository

import (
	"database/sql"
	"fmt"

	"github.com/sharmaakash12-2000/Delhi-Metro/internal/models"
)

// StationRepository handles database operations for stations and their
// line memberships
type StationRepository struct {
	db *sql.DB
}

// NewStationRepository creates a new station repository
func NewStationRepository(db *sql.DB) *StationRepository {
	return &StationRepository{db: db}
}

// GetStations retrieves every station with its coordinates and line
// memberships
func (r *StationRepository) GetStations() ([]models.Station, error) {
	rows, err := r.db.Query(`SELECT name, latitude, longitude FROM stations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []models.Station
	index := make(map[string]int)
	for rows.Next() {
		var (
			s   models.Station
			lat sql.NullFloat64
			lon sql.NullFloat64
		)
		if err := rows.Scan(&s.Name, &lat, &lon); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		if lat.Valid && lon.Valid {
			s.Latitude = &lat.Float64
			s.Longitude = &lon.Float64
		}
		index[s.Name] = len(stations)
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stations: %w", err)
	}

	memberships, err := r.getMemberships()
	if err != nil {
		return nil, err
	}
	for name, lines := range memberships {
		if i, ok := index[name]; ok {
			stations[i].Lines = lines
		}
	}
	return stations, nil
}

func (r *StationRepository) getMemberships() (map[string][]models.LineMembership, error) {
	rows, err := r.db.Query(`SELECT station_name, line_name, sequence_order
		FROM station_lines ORDER BY line_name, sequence_order`)
	if err != nil {
		return nil, fmt.Errorf("failed to query station lines: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]models.LineMembership)
	for rows.Next() {
		var (
			station string
			m       models.LineMembership
			seq     sql.NullInt64
		)
		if err := rows.Scan(&station, &m.Line, &seq); err != nil {
			return nil, fmt.Errorf("failed to scan station line: %w", err)
		}
		if seq.Valid {
			v := int(seq.Int64)
			m.SequenceOrder = &v
		}
		out[station] = append(out[station], m)
	}
	return out, rows.Err()
}

// CountStations returns the number of stations in the reference tables
func (r *StationRepository) CountStations() (int64, error) {
	var count int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM stations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count stations: %w", err)
	}
	return count, nil
}
