package routing

// FareForDistance looks up the flat fare for a trip of the given length.
// Distance is clamped to zero before the lookup; distances beyond the last
// bracket pay MaxFare. The bracket table must be sorted by threshold, which
// configuration loading enforces.
func FareForDistance(distanceKM float64, params Params) int {
	if distanceKM < 0 {
		distanceKM = 0
	}
	for _, b := range params.FareBrackets {
		if distanceKM <= b.UpToKM {
			return b.Fare
		}
	}
	return params.MaxFare
}
