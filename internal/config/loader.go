// Package config loads the YAML run manifest used by `aoc run`.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// DefaultManifest returns a Manifest with one worker per CPU and no runs.
func DefaultManifest() Manifest {
	return Manifest{
		Workers: runtime.GOMAXPROCS(0),
	}
}

// ValidationError represents a manifest validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadManifest reads, parses and validates the manifest at path.
// Relative run inputs are rewritten against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m := DefaultManifest()
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := ValidateManifest(&m); err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	for i := range m.Runs {
		if !filepath.IsAbs(m.Runs[i].Input) {
			m.Runs[i].Input = filepath.Join(base, m.Runs[i].Input)
		}
	}

	return &m, nil
}

// ValidateManifest checks worker count and every run entry.
func ValidateManifest(m *Manifest) error {
	if m.Workers <= 0 {
		return ValidationError{Field: "workers", Message: "must be positive"}
	}
	if len(m.Runs) == 0 {
		return ValidationError{Field: "runs", Message: "at least one run is required"}
	}
	for i, r := range m.Runs {
		if r.Day < 1 || r.Day > 25 {
			return ValidationError{Field: fmt.Sprintf("runs[%d].day", i), Message: "must be between 1 and 25"}
		}
		if r.Input == "" {
			return ValidationError{Field: fmt.Sprintf("runs[%d].input", i), Message: "required field is empty"}
		}
	}
	return nil
}
