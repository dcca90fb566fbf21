package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/mvmsim/display"
)

// RunConfig holds harness settings for one computation.
type RunConfig struct {
	// MatrixImage is the path to the matrix store image (.hex or raw
	// binary). Empty selects the built-in all-ones demo image.
	MatrixImage string `json:"matrix_image"`

	// VectorImage is the path to the vector store image. Empty selects
	// the built-in all-ones demo image.
	VectorImage string `json:"vector_image"`

	// DisplaySelect chooses the register the display presents:
	// "sum" or "cycles". Default: "sum".
	DisplaySelect string `json:"display_select"`

	// MaxCycles bounds the number of clock edges driven. 0 means run
	// to completion.
	MaxCycles uint64 `json:"max_cycles"`
}

// DefaultRunConfig returns a RunConfig with default values.
func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		DisplaySelect: "sum",
		MaxCycles:     0,
	}
}

// LoadRunConfig loads a run configuration from a JSON file. Fields not
// present in the file keep their defaults.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultRunConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// displaySource maps the config string to a display source.
func (c *RunConfig) displaySource() (display.Source, error) {
	switch c.DisplaySelect {
	case "", "sum":
		return display.SourceSum, nil
	case "cycles":
		return display.SourceCycles, nil
	default:
		return 0, fmt.Errorf("unknown display_select %q (want \"sum\" or \"cycles\")",
			c.DisplaySelect)
	}
}
