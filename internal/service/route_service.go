package service

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/sharmaakash12-2000/Delhi-Metro/internal/models"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/repository"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/routing"
)

// RouteService answers route queries against a cached graph snapshot.
//
// The snapshot is immutable once built; queries read it lock-free through
// an atomic pointer. Rebuild is serialized and swaps the pointer, so
// in-flight queries keep the snapshot they started with.
type RouteService struct {
	stations *repository.StationRepository
	edges    *repository.EdgeRepository
	params   routing.Params

	graph     atomic.Pointer[routing.Graph]
	rebuildMu sync.Mutex
}

// NewRouteService creates a new route service
func NewRouteService(stations *repository.StationRepository, edges *repository.EdgeRepository, params routing.Params) *RouteService {
	return &RouteService{stations: stations, edges: edges, params: params}
}

// Rebuild loads the reference tables and swaps in a freshly built graph.
// Concurrent rebuilds are serialized.
func (s *RouteService) Rebuild() error {
	s.rebuildMu.Lock()
	defer s.rebuildMu.Unlock()

	stations, err := s.stations.GetStations()
	if err != nil {
		return fmt.Errorf("failed to load stations: %w", err)
	}
	edges, err := s.edges.GetEdges()
	if err != nil {
		return fmt.Errorf("failed to load edges: %w", err)
	}

	g, err := routing.BuildGraph(stations, edges, s.params)
	if err != nil {
		return err
	}
	for _, w := range g.Warnings() {
		log.Printf("Graph warning: %s", w)
	}

	s.graph.Store(g)
	log.Printf("Graph rebuilt: %d stations, %d lines", g.NumStations(), len(g.Lines()))
	return nil
}

// Graph returns the current snapshot, or an error before the first
// successful Rebuild
func (s *RouteService) Graph() (*routing.Graph, error) {
	g := s.graph.Load()
	if g == nil {
		return nil, fmt.Errorf("reference data not loaded")
	}
	return g, nil
}

// Plan computes the fastest route between two stations and annotates it
// into a trip summary. A *routing.NoRouteFoundError is returned when the
// query cannot be answered.
func (s *RouteService) Plan(source, target string) (*models.TripSummary, error) {
	g, err := s.Graph()
	if err != nil {
		return nil, err
	}
	path, err := routing.FindRoute(g, source, target)
	if err != nil {
		return nil, err
	}
	summary := routing.Annotate(g, path, s.params)
	return &summary, nil
}

// Warnings returns the integrity warnings of the current snapshot
func (s *RouteService) Warnings() []string {
	g := s.graph.Load()
	if g == nil {
		return nil
	}
	return g.Warnings()
}
