package models

// Station represents a metro station in the reference network.
// Name is the unique key across the whole network; a station that belongs
// to more than one line is an interchange station.
type Station struct {
	Name string `json:"name" db:"name"`

	// Coordinates are optional; distance-dependent values degrade when absent
	Latitude  *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" db:"longitude"`

	// Line memberships, each with its own position along that line
	Lines []LineMembership `json:"lines,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are known
func (s *Station) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// LineMembership records a station's position on one line.
// SequenceOrder is used only to derive direction of travel; it is nil when
// the mapping file did not carry a position for this station.
type LineMembership struct {
	Line          string `json:"line" db:"line_name"`
	SequenceOrder *int   `json:"sequence_order,omitempty" db:"sequence_order"`
}

// Line is an ordered view of one metro line, stations sorted by sequence order
type Line struct {
	Name     string   `json:"name"`
	Stations []string `json:"stations"`
}
