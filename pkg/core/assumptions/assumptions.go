// Package assumptions loads the rate card: every named constant the
// calculators use, adjustable without code changes.
package assumptions

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"

	"property_valuation/pkg/core/bidding"
	"property_valuation/pkg/core/platform"
	"property_valuation/pkg/core/qualify"
	"property_valuation/pkg/core/signage"
)

// Config aggregates the assumption sets of all four calculators.
type Config struct {
	Signage  signage.Assumptions  `yaml:"signage" json:"signage"`
	Platform platform.Assumptions `yaml:"platform" json:"platform"`
	Bidding  bidding.Assumptions  `yaml:"bidding" json:"bidding"`
	Qualify  qualify.Bands        `yaml:"qualify" json:"qualify"`
}

// Defaults returns the compiled-in rate card.
func Defaults() Config {
	return Config{
		Signage:  signage.DefaultAssumptions(),
		Platform: platform.DefaultAssumptions(),
		Bidding:  bidding.DefaultAssumptions(),
		Qualify:  qualify.DefaultBands(),
	}
}

// LoadFile reads a rate card from a YAML file, or an Hjson file when
// the extension is .hjson (hand-edited cards with comments). Loading
// is fail-open on absence: a missing file yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read rate card: %w", err)
	}

	switch filepath.Ext(path) {
	case ".hjson":
		if err := hjson.Unmarshal(data, &cfg); err != nil {
			return Defaults(), fmt.Errorf("failed to parse hjson rate card: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Defaults(), fmt.Errorf("failed to parse rate card: %w", err)
		}
	}
	return cfg, nil
}

// Process-wide active rate card. Handlers read it on every request;
// the config API may swap it.
var (
	mu     sync.RWMutex
	active = Defaults()
)

// Active returns the current rate card.
func Active() Config {
	mu.RLock()
	defer mu.RUnlock()
	return active
}

// SetActive replaces the current rate card.
func SetActive(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	active = cfg
}
