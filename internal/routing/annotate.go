package routing

import (
	"math"

	"github.com/sharmaakash12-2000/Delhi-Metro/internal/models"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/spatial"
)

// DirectionUnknown is reported when sequence data is missing for either
// station of a hop; the query still succeeds.
const DirectionUnknown = "unknown"

// Annotate walks a path produced by FindRoute and derives the rider-facing
// trip summary: distance, interchanges with direction and platform, fare
// and estimated total time.
//
// Change detection records an interchange whenever the line of edge i
// differs from edge i-1. A repeated change at the exact same station is
// suppressed when Params.DedupInterchangeAtStation is set.
func Annotate(g *Graph, path []string, params Params) models.TripSummary {
	summary := models.TripSummary{
		Path:     path,
		Stations: len(path),
	}
	if len(path) == 0 {
		summary.Fare = FareForDistance(0, params)
		return summary
	}

	summary.Source = path[0]
	summary.Destination = path[len(path)-1]
	summary.Hops = len(path) - 1

	var travelMin float64
	prevLine := ""
	lastChangeStation := ""

	for i := 0; i+1 < len(path); i++ {
		cur, next := path[i], path[i+1]

		edge, ok := g.EdgeBetween(cur, next, prevLine)
		if !ok {
			// Path did not come from this graph; still answer usefully
			edge = Edge{From: cur, To: next, TimeMin: params.DefaultEdgeTimeMin}
		}
		travelMin += edge.TimeMin

		if lat1, lon1, ok1 := g.Coordinates(cur); ok1 {
			if lat2, lon2, ok2 := g.Coordinates(next); ok2 {
				summary.DistanceKM += spatial.HaversineKm(lat1, lon1, lat2, lon2)
			} else {
				summary.MissingCoordinates = true
			}
		} else {
			summary.MissingCoordinates = true
		}

		if prevLine != "" && edge.Line != prevLine {
			if !params.DedupInterchangeAtStation || lastChangeStation != cur {
				direction := g.Direction(edge.Line, cur, next)
				platform := params.PlatformFor(edge.Line, g, cur, next)
				summary.Steps = append(summary.Steps,
					models.InterchangeStep(cur, prevLine, edge.Line, direction, platform))
				summary.Changes++
				lastChangeStation = cur
			}
		}

		summary.Steps = append(summary.Steps, models.TravelStep(cur, next, edge.Line))
		prevLine = edge.Line
	}

	summary.TimeMinutes = int(math.Round(
		travelMin +
			float64(summary.Hops)*params.DwellTimeMin +
			float64(summary.Changes)*params.InterchangeTimeMin))
	summary.Fare = FareForDistance(summary.DistanceKM, params)
	return summary
}

// Direction derives the direction of travel on a line for the hop
// cur -> next from the two stations' sequence orders: towards the
// max-sequence terminal when next is further along, towards the
// min-sequence terminal otherwise. Missing sequence data degrades to
// DirectionUnknown instead of failing the query.
func (g *Graph) Direction(line, cur, next string) string {
	seqCur, okCur := g.SequenceOrder(line, cur)
	seqNext, okNext := g.SequenceOrder(line, next)
	start, end, okTerm := g.Terminals(line)
	if !okCur || !okNext || !okTerm {
		return DirectionUnknown
	}
	if seqNext > seqCur {
		return "towards " + end
	}
	return "towards " + start
}

// PlatformFor resolves the boarding platform for a line and hop direction
// from the static per-line table, falling back to DefaultPlatform for
// unknown lines or unknown direction.
func (p Params) PlatformFor(line string, g *Graph, cur, next string) int {
	pair, ok := p.Platforms[NormalizeLine(line)]
	if !ok {
		return p.DefaultPlatform
	}
	seqCur, okCur := g.SequenceOrder(line, cur)
	seqNext, okNext := g.SequenceOrder(line, next)
	if !okCur || !okNext {
		return p.DefaultPlatform
	}
	if seqNext > seqCur {
		return pair.Up
	}
	return pair.Down
}
