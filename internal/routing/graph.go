package routing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sharmaakash12-2000/Delhi-Metro/internal/models"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/spatial"
)

// Edge is one directed half of an undirected graph edge: a hop to an
// adjacent station on one line, weighted in minutes.
type Edge struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Line    string  `json:"line"`
	TimeMin float64 `json:"time_min"`
}

type nodeInfo struct {
	lat *float64
	lon *float64
}

type lineInfo struct {
	seq   map[string]int // station -> sequence order
	start string         // min sequence order station
	end   string         // max sequence order station
}

// Graph is the undirected weighted station network. It is built once from
// the reference tables and read-only afterwards; concurrent queries share
// one instance without locking.
type Graph struct {
	nodes    map[string]*nodeInfo
	adj      map[string][]Edge
	lines    map[string]*lineInfo
	warnings []string
}

// NumStations returns the number of nodes
func (g *Graph) NumStations() int { return len(g.nodes) }

// HasStation reports whether the station is a node of the graph
func (g *Graph) HasStation(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Stations returns all station names in sorted order
func (g *Graph) Stations() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Coordinates returns a station's position, ok=false when unknown
func (g *Graph) Coordinates(name string) (lat, lon float64, ok bool) {
	n, exists := g.nodes[name]
	if !exists || n.lat == nil || n.lon == nil {
		return 0, 0, false
	}
	return *n.lat, *n.lon, true
}

// Lines returns all line identifiers in sorted order
func (g *Graph) Lines() []string {
	names := make([]string, 0, len(g.lines))
	for name := range g.lines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LineStations returns the stations of a line ordered by sequence
func (g *Graph) LineStations(line string) []string {
	l, ok := g.lines[line]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(l.seq))
	for name := range l.seq {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if l.seq[names[i]] != l.seq[names[j]] {
			return l.seq[names[i]] < l.seq[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// SequenceOrder returns a station's position on a line, ok=false when the
// station has no known position there
func (g *Graph) SequenceOrder(line, station string) (int, bool) {
	l, ok := g.lines[line]
	if !ok {
		return 0, false
	}
	seq, ok := l.seq[station]
	return seq, ok
}

// Terminals returns the min- and max-sequence stations of a line
func (g *Graph) Terminals(line string) (start, end string, ok bool) {
	l, exists := g.lines[line]
	if !exists || l.start == "" {
		return "", "", false
	}
	return l.start, l.end, true
}

// Neighbors returns the outgoing edges of a station
func (g *Graph) Neighbors(name string) []Edge {
	return g.adj[name]
}

// EdgeBetween picks the edge used to travel between two adjacent stations.
// With parallel edges on different lines it returns the cheapest, breaking
// ties in favor of preferLine (the line already being ridden) and then by
// line name, so annotation is deterministic and does not invent changes.
func (g *Graph) EdgeBetween(a, b, preferLine string) (Edge, bool) {
	var best Edge
	found := false
	for _, e := range g.adj[a] {
		if e.To != b {
			continue
		}
		if !found || better(e, best, preferLine) {
			best = e
			found = true
		}
	}
	return best, found
}

func better(e, than Edge, preferLine string) bool {
	if e.TimeMin != than.TimeMin {
		return e.TimeMin < than.TimeMin
	}
	if (e.Line == preferLine) != (than.Line == preferLine) {
		return e.Line == preferLine
	}
	return e.Line < than.Line
}

// Warnings returns the integrity warnings collected while building
func (g *Graph) Warnings() []string { return g.warnings }

// NormalizeLine canonicalizes a line identifier for lookups
func NormalizeLine(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

// BuildGraph constructs the station graph from the reference tables.
//
// Edge weights resolve in three tiers: an explicit travel time on the edge
// row, then a symmetric search of the edge table for the same pair, then a
// time derived from great-circle distance at Params.AvgSpeedKmh, and as a
// last resort Params.DefaultEdgeTimeMin.
//
// An edge naming a station absent from the station table is included with a
// warning rather than rejected, so routing over an incomplete station table
// stays possible. An empty station table is a hard error.
func BuildGraph(stations []models.Station, edges []models.Edge, params Params) (*Graph, error) {
	if len(stations) == 0 {
		return nil, &DataIntegrityError{Reason: "station table is empty, graph has no nodes"}
	}

	g := &Graph{
		nodes: make(map[string]*nodeInfo, len(stations)),
		adj:   make(map[string][]Edge),
		lines: make(map[string]*lineInfo),
	}

	for i := range stations {
		s := &stations[i]
		if s.Name == "" {
			continue
		}
		node, exists := g.nodes[s.Name]
		if !exists {
			node = &nodeInfo{}
			g.nodes[s.Name] = node
		}
		if s.Latitude != nil && s.Longitude != nil {
			node.lat = s.Latitude
			node.lon = s.Longitude
		}
		for _, m := range s.Lines {
			if m.SequenceOrder == nil {
				continue
			}
			line := NormalizeLine(m.Line)
			l, ok := g.lines[line]
			if !ok {
				l = &lineInfo{seq: make(map[string]int)}
				g.lines[line] = l
			}
			l.seq[s.Name] = *m.SequenceOrder
		}
	}

	for _, e := range edges {
		if e.From == "" || e.To == "" {
			g.warn(fmt.Sprintf("edge on line %q is missing a station name, skipped", e.Line))
			continue
		}
		for _, name := range []string{e.From, e.To} {
			if !g.HasStation(name) {
				g.warn(fmt.Sprintf("station %q appears in the edge table but not in the station table", name))
				g.nodes[name] = &nodeInfo{}
			}
		}

		line := NormalizeLine(e.Line)
		weight := g.resolveWeight(e, edges, params)
		g.adj[e.From] = append(g.adj[e.From], Edge{From: e.From, To: e.To, Line: line, TimeMin: weight})
		g.adj[e.To] = append(g.adj[e.To], Edge{From: e.To, To: e.From, Line: line, TimeMin: weight})
	}

	for _, l := range g.lines {
		for name, seq := range l.seq {
			if l.start == "" || seq < l.seq[l.start] || (seq == l.seq[l.start] && name < l.start) {
				l.start = name
			}
			if l.end == "" || seq > l.seq[l.end] || (seq == l.seq[l.end] && name < l.end) {
				l.end = name
			}
		}
	}

	return g, nil
}

// resolveWeight applies the three-tier fallback for one edge row
func (g *Graph) resolveWeight(e models.Edge, edges []models.Edge, params Params) float64 {
	if e.TravelTimeMin != nil && *e.TravelTimeMin >= 0 {
		return *e.TravelTimeMin
	}

	// Another row may carry the time for the same pair in either direction
	for _, other := range edges {
		if other.TravelTimeMin == nil || *other.TravelTimeMin < 0 {
			continue
		}
		if (other.From == e.From && other.To == e.To) || (other.From == e.To && other.To == e.From) {
			return *other.TravelTimeMin
		}
	}

	if lat1, lon1, ok1 := g.Coordinates(e.From); ok1 {
		if lat2, lon2, ok2 := g.Coordinates(e.To); ok2 && params.AvgSpeedKmh > 0 {
			return spatial.HaversineKm(lat1, lon1, lat2, lon2) / params.AvgSpeedKmh * 60
		}
	}

	return params.DefaultEdgeTimeMin
}

func (g *Graph) warn(msg string) {
	g.warnings = append(g.warnings, msg)
}
