package routing

import (
	"fmt"
)

// NoRouteFoundError reports that a route query cannot be answered: an
// endpoint is not in the graph or the two stations are disconnected.
// It is returned per query and never substituted with a default route.
type NoRouteFoundError struct {
	Source string
	Target string
	Reason string
}

func (e *NoRouteFoundError) Error() string {
	return fmt.Sprintf("no route from %q to %q: %s", e.Source, e.Target, e.Reason)
}

// DataIntegrityError reports reference data that cannot produce a usable
// graph at all. Recoverable problems (missing coordinates, edges naming
// unknown stations) are collected as graph warnings instead.
type DataIntegrityError struct {
	Reason string
}

func (e *DataIntegrityError) Error() string {
	return "data integrity: " + e.Reason
}
