package repository

import (
	"database/sql"
	"fmt"

	"github.com/sharmaakash12-2000/Delhi-Metro/internal/models"
)

// EdgeRepository handles database operations for edges
type EdgeRepository struct {
	db *sql.DB
}

// NewEdgeRepository creates a new edge repository
func NewEdgeRepository(db *sql.DB) *EdgeRepository {
	return &EdgeRepository{db: db}
}

// GetEdges retrieves every edge row
func (r *EdgeRepository) GetEdges() ([]models.Edge, error) {
	rows, err := r.db.Query(`SELECT from_station, to_station, line_name, travel_time_min
		FROM edges ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer rows.Close()

	var edges []models.Edge
	for rows.Next() {
		var (
			e    models.Edge
			time sql.NullFloat64
		)
		if err := rows.Scan(&e.From, &e.To, &e.Line, &time); err != nil {
			return nil, fmt.Errorf("failed to scan edge: %w", err)
		}
		if time.Valid {
			e.TravelTimeMin = &time.Float64
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate edges: %w", err)
	}
	return edges, nil
}
