package models

// Edge connects two adjacent stations on exactly one line.
// The pair is undirected; parallel edges between the same stations on
// different lines are distinct rows.
type Edge struct {
	From string `json:"from_station" db:"from_station"`
	To   string `json:"to_station" db:"to_station"`
	Line string `json:"line" db:"line_name"`

	// Explicit travel time in minutes; nil when the edge table did not
	// supply one (the graph builder then falls back, see routing.BuildGraph)
	TravelTimeMin *float64 `json:"travel_time_min,omitempty" db:"travel_time_min"`
}
