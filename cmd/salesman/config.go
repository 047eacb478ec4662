package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the classic demo instance: six cities on a 100×100 map,
// plotted on a 50×50 raster.
const (
	defaultCityCount   = 6
	defaultMapWidth    = 100
	defaultGraphPixels = 50
)

// Config holds every knob the demo understands. All fields are optional in
// the YAML file; absent keys keep their defaults. Flags override the file.
type Config struct {
	// CityCount is the number of cities to generate (n).
	CityCount int `yaml:"city_count"`
	// MapWidth bounds coordinates to [0..MapWidth).
	MapWidth int `yaml:"map_width"`
	// Seed drives point generation; 0 selects the fixed default stream.
	Seed int64 `yaml:"seed"`
	// Debug enables the plot, the grid table, and per-minimum traces.
	Debug bool `yaml:"is_debug"`
	// ShowAllTraversals prints every scored tour (debug only; factorial output!).
	ShowAllTraversals bool `yaml:"show_all_traversals"`
	// GraphPixels is the square raster size of the debug plot.
	GraphPixels int `yaml:"graph_pixels"`
	// HalveReflections scores each undirected tour once instead of twice.
	HalveReflections bool `yaml:"halve_reflections"`
}

// DefaultConfig returns the demo defaults (debug off; enable it per run).
func DefaultConfig() Config {
	return Config{
		CityCount:   defaultCityCount,
		MapWidth:    defaultMapWidth,
		GraphPixels: defaultGraphPixels,
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
// Unknown keys are rejected (typos should fail loudly, not silently
// fall back to defaults).
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		// An empty file is a valid "all defaults" config.
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
