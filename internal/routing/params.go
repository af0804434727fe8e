package routing

// FareBracket maps a distance threshold (inclusive upper bound, km) to a
// flat fare. Brackets are checked in order; distances beyond the last
// bracket pay MaxFare.
type FareBracket struct {
	UpToKM float64
	Fare   int
}

// PlatformPair holds the platform numbers for the two directions of travel
// on one line.
type PlatformPair struct {
	Up   int // towards the max-sequence terminal
	Down int // towards the min-sequence terminal
}

// Params holds every tunable constant of route computation. Values come
// from configuration, not from call sites.
type Params struct {
	InterchangeTimeMin float64 // extra minutes per line change
	DwellTimeMin       float64 // minutes per station stop
	AvgSpeedKmh        float64 // used to derive edge times from coordinates
	DefaultEdgeTimeMin float64 // last-resort edge weight

	FareBrackets []FareBracket
	MaxFare      int

	// Platform numbers per line and direction; unknown lines resolve to
	// DefaultPlatform
	Platforms       map[string]PlatformPair
	DefaultPlatform int

	// Suppress a second interchange record at the exact same station
	DedupInterchangeAtStation bool
}

// DefaultParams returns the standard DMRC-style tuning.
func DefaultParams() Params {
	return Params{
		InterchangeTimeMin: 1,
		DwellTimeMin:       0.2,
		AvgSpeedKmh:        80,
		DefaultEdgeTimeMin: 2,
		FareBrackets: []FareBracket{
			{UpToKM: 2, Fare: 11},
			{UpToKM: 5, Fare: 21},
			{UpToKM: 12, Fare: 32},
			{UpToKM: 21, Fare: 43},
			{UpToKM: 32, Fare: 54},
		},
		MaxFare: 64,
		Platforms: map[string]PlatformPair{
			"yellow":  {Up: 1, Down: 2},
			"red":     {Up: 1, Down: 2},
			"blue":    {Up: 1, Down: 2},
			"green":   {Up: 1, Down: 2},
			"violet":  {Up: 1, Down: 2},
			"magenta": {Up: 2, Down: 1},
			"pink":    {Up: 2, Down: 1},
		},
		DefaultPlatform:           1,
		DedupInterchangeAtStation: true,
	}
}
