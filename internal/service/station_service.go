package service

import (
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/models"
)

// StationService exposes the station and line views of the current graph
// snapshot for UI pickers
type StationService struct {
	routes *RouteService
}

// NewStationService creates a new station service
func NewStationService(routes *RouteService) *StationService {
	return &StationService{routes: routes}
}

// Stations returns every station name in sorted order
func (s *StationService) Stations() ([]string, error) {
	g, err := s.routes.Graph()
	if err != nil {
		return nil, err
	}
	return g.Stations(), nil
}

// Lines returns every line with its stations in sequence order
func (s *StationService) Lines() ([]models.Line, error) {
	g, err := s.routes.Graph()
	if err != nil {
		return nil, err
	}
	var lines []models.Line
	for _, name := range g.Lines() {
		lines = append(lines, models.Line{
			Name:     name,
			Stations: g.LineStations(name),
		})
	}
	return lines, nil
}
