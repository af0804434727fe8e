package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/sharmaakash12-2000/Delhi-Metro/internal/routing"
)

// routingParamsFile is the yaml shape of the routing parameters file. Every
// field is optional; absent values keep their defaults.
type routingParamsFile struct {
	InterchangeTimeMin *float64 `yaml:"interchange_time_min" validate:"omitempty,gte=0"`
	DwellTimeMin       *float64 `yaml:"dwell_time_min" validate:"omitempty,gte=0"`
	AvgSpeedKmh        *float64 `yaml:"avg_speed_kmh" validate:"omitempty,gt=0"`
	DefaultEdgeTimeMin *float64 `yaml:"default_edge_time_min" validate:"omitempty,gt=0"`

	MaxFare      *int               `yaml:"max_fare" validate:"omitempty,gt=0"`
	FareBrackets []fareBracketEntry `yaml:"fare_brackets" validate:"omitempty,dive"`

	Platforms map[string]platformEntry `yaml:"platforms"`

	DedupInterchange *bool `yaml:"dedup_interchange_at_station"`
}

type fareBracketEntry struct {
	UpToKM float64 `yaml:"up_to_km" validate:"gt=0"`
	Fare   int     `yaml:"fare" validate:"gt=0"`
}

type platformEntry struct {
	Up   int `yaml:"up" validate:"gte=1"`
	Down int `yaml:"down" validate:"gte=1"`
}

// LoadRoutingParams returns the routing parameters, overlaying the yaml
// file at path onto the built-in defaults. A missing file is not an error;
// a malformed or inconsistent one is.
func LoadRoutingParams(path string) (routing.Params, error) {
	params := routing.DefaultParams()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return params, nil
	}
	if err != nil {
		return params, fmt.Errorf("failed to read routing params: %w", err)
	}

	var file routingParamsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return params, fmt.Errorf("failed to parse routing params: %w", err)
	}
	if err := validator.New().Struct(file); err != nil {
		return params, fmt.Errorf("invalid routing params: %w", err)
	}

	if file.InterchangeTimeMin != nil {
		params.InterchangeTimeMin = *file.InterchangeTimeMin
	}
	if file.DwellTimeMin != nil {
		params.DwellTimeMin = *file.DwellTimeMin
	}
	if file.AvgSpeedKmh != nil {
		params.AvgSpeedKmh = *file.AvgSpeedKmh
	}
	if file.DefaultEdgeTimeMin != nil {
		params.DefaultEdgeTimeMin = *file.DefaultEdgeTimeMin
	}
	if file.MaxFare != nil {
		params.MaxFare = *file.MaxFare
	}
	if len(file.FareBrackets) > 0 {
		brackets := make([]routing.FareBracket, len(file.FareBrackets))
		for i, b := range file.FareBrackets {
			brackets[i] = routing.FareBracket{UpToKM: b.UpToKM, Fare: b.Fare}
		}
		if err := checkBrackets(brackets, params.MaxFare); err != nil {
			return params, err
		}
		params.FareBrackets = brackets
	}
	if len(file.Platforms) > 0 {
		platforms := make(map[string]routing.PlatformPair, len(file.Platforms))
		for line, p := range file.Platforms {
			platforms[routing.NormalizeLine(line)] = routing.PlatformPair{Up: p.Up, Down: p.Down}
		}
		params.Platforms = platforms
	}
	if file.DedupInterchange != nil {
		params.DedupInterchangeAtStation = *file.DedupInterchange
	}

	return params, nil
}

// checkBrackets rejects fare tables that are not strictly increasing in
// both threshold and fare, which would break monotonicity of the step
// function.
func checkBrackets(brackets []routing.FareBracket, maxFare int) error {
	if !sort.SliceIsSorted(brackets, func(i, j int) bool {
		return brackets[i].UpToKM < brackets[j].UpToKM
	}) {
		return fmt.Errorf("invalid routing params: fare brackets must be sorted by distance")
	}
	for i := 1; i < len(brackets); i++ {
		if brackets[i].UpToKM == brackets[i-1].UpToKM {
			return fmt.Errorf("invalid routing params: duplicate fare bracket at %.2f km", brackets[i].UpToKM)
		}
		if brackets[i].Fare <= brackets[i-1].Fare {
			return fmt.Errorf("invalid routing params: fares must increase with distance")
		}
	}
	if len(brackets) > 0 && maxFare <= brackets[len(brackets)-1].Fare {
		return fmt.Errorf("invalid routing params: max_fare must exceed the last bracket fare")
	}
	return nil
}
