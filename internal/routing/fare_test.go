package routing

import "testing"

func TestFareForDistance(t *testing.T) {
	params := DefaultParams()

	t.Run("BracketBoundaries", func(t *testing.T) {
		cases := []struct {
			km   float64
			fare int
		}{
			{0, 11},
			{2.0, 11},
			{2.01, 21},
			{5.0, 21},
			{12.0, 32},
			{21.0, 43},
			{32.0, 54},
			{32.01, 64},
			{100, 64},
		}
		for _, c := range cases {
			if got := FareForDistance(c.km, params); got != c.fare {
				t.Errorf("fare(%.2f): expected %d, got %d", c.km, c.fare, got)
			}
		}
	})

	t.Run("NegativeClampsToZero", func(t *testing.T) {
		if got := FareForDistance(-3, params); got != 11 {
			t.Errorf("Expected minimum fare 11 for negative distance, got %d", got)
		}
	})

	t.Run("MonotonicNonDecreasing", func(t *testing.T) {
		prev := 0
		for km := 0.0; km <= 50; km += 0.25 {
			fare := FareForDistance(km, params)
			if fare < prev {
				t.Fatalf("Fare decreased at %.2f km: %d -> %d", km, prev, fare)
			}
			prev = fare
		}
	})
}
