package config

import (
	"fmt"
	"os"

	"ocs_dashboard/internal/twin"

	"gopkg.in/yaml.v3"
)

// FleetFile is the on-disk asset catalogue.
type FleetFile struct {
	Assets []AssetEntry `yaml:"assets"`
}

type AssetEntry struct {
	Key           string    `yaml:"key"`
	Name          string    `yaml:"name"`
	Icon          string    `yaml:"icon"`
	InitialHealth float64   `yaml:"initialHealth"`
	Degradation   []float64 `yaml:"degradationRange,omitempty"` // [min, max]
	AnomalyChance *float64  `yaml:"anomalyChance,omitempty"`
}

// LoadFleet reads the catalogue at path. An empty path yields the built-in fleet.
func LoadFleet(path string) ([]twin.Spec, error) {
	if path == "" {
		return twin.DefaultSpecs(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fleet file: %w", err)
	}
	return ParseFleet(data)
}

// ParseFleet decodes and validates a YAML catalogue.
func ParseFleet(data []byte) ([]twin.Spec, error) {
	var f FleetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fleet file: %w", err)
	}
	if len(f.Assets) == 0 {
		return nil, fmt.Errorf("invalid fleet: at least one asset must be defined")
	}

	specs := make([]twin.Spec, 0, len(f.Assets))
	seen := make(map[string]bool, len(f.Assets))
	for i, a := range f.Assets {
		spec := twin.Spec{
			Key:            a.Key,
			Name:           a.Name,
			Icon:           a.Icon,
			InitialHealth:  a.InitialHealth,
			DegradationMin: twin.DefaultDegradationMin,
			DegradationMax: twin.DefaultDegradationMax,
			AnomalyChance:  twin.DefaultAnomalyChance,
		}
		if a.Degradation != nil {
			if len(a.Degradation) != 2 {
				return nil, fmt.Errorf("invalid fleet: asset %s: degradationRange needs exactly two values", a.Key)
			}
			spec.DegradationMin, spec.DegradationMax = a.Degradation[0], a.Degradation[1]
		}
		if a.AnomalyChance != nil {
			spec.AnomalyChance = *a.AnomalyChance
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("invalid fleet: asset %d: %w", i, err)
		}
		if seen[spec.Key] {
			return nil, fmt.Errorf("invalid fleet: duplicate asset key %q", spec.Key)
		}
		seen[spec.Key] = true
		specs = append(specs, spec)
	}
	return specs, nil
}
