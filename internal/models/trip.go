package models

import "fmt"

// Step types in a trip summary
const (
	StepTravel      = "travel"
	StepInterchange = "interchange"
)

// TripStep is one entry in the rider-facing step list: either a travel hop
// along a line or a line change at a station.
type TripStep struct {
	Type string `json:"type"`

	// Travel hop
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
	Line string `json:"line,omitempty"`

	// Interchange
	Station   string `json:"station,omitempty"`
	FromLine  string `json:"from_line,omitempty"`
	ToLine    string `json:"to_line,omitempty"`
	Direction string `json:"direction,omitempty"`
	Platform  int    `json:"platform,omitempty"`

	// Human-readable rendering of the step
	Text string `json:"text"`
}

// TravelStep builds a travel hop step
func TravelStep(from, to, line string) TripStep {
	name := line
	if name == "" {
		name = "Unknown"
	}
	return TripStep{
		Type: StepTravel,
		From: from,
		To:   to,
		Line: line,
		Text: fmt.Sprintf("Go to %s (%s Line)", to, name),
	}
}

// InterchangeStep builds a line-change step
func InterchangeStep(station, fromLine, toLine, direction string, platform int) TripStep {
	return TripStep{
		Type:      StepInterchange,
		Station:   station,
		FromLine:  fromLine,
		ToLine:    toLine,
		Direction: direction,
		Platform:  platform,
		Text: fmt.Sprintf("Change from %s Line to %s Line at %s (platform %d, %s)",
			fromLine, toLine, station, platform, direction),
	}
}

// TripSummary is the derived result of one route query. It is computed per
// query and never persisted.
type TripSummary struct {
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	Path        []string `json:"path"`

	Stations int `json:"stations"` // total stations including both endpoints
	Hops     int `json:"hops"`
	Changes  int `json:"changes"`

	DistanceKM  float64 `json:"distance_km"`
	TimeMinutes int     `json:"time_minutes"`
	Fare        int     `json:"fare"`

	// Set when at least one segment lacked coordinates and contributed
	// zero to the distance sum
	MissingCoordinates bool `json:"missing_coordinates,omitempty"`

	Steps []TripStep `json:"steps"`
}
