// Package settings persists the user's demo preferences between runs.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Direction preference values stored on disk.
const (
	DirectionClockwise        = 0
	DirectionCounterclockwise = 1
)

// Settings is the on-disk preference file. Direction is the last-selected
// rotation direction, read at startup and written whenever the user picks
// a direction on the command line.
type Settings struct {
	Direction    int     `yaml:"direction"`     // 0 clockwise, 1 counterclockwise
	ResetEnabled bool    `yaml:"reset_enabled"` // rebuild the reset fixture's scene periodically
	ResetAfter   int     `yaml:"reset_after"`   // rotations between rebuilds
	Threshold    float64 `yaml:"threshold"`     // drift tolerance in degrees
}

// Default returns the settings used when no file exists yet.
func Default() Settings {
	return Settings{
		Direction:    DirectionClockwise,
		ResetEnabled: true,
		ResetAfter:   10,
		Threshold:    0.01,
	}
}

// Path returns the settings file location under the user config dir.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "rotationtest", "settings.yaml"), nil
}

// Load reads and parses the settings file. A missing file is not an
// error: defaults are returned.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}

	return s, nil
}

// Save writes the settings file, creating its directory if needed.
func (s Settings) Save(path string) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid settings: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Validate checks the settings for values the demo cannot run with.
func (s Settings) Validate() error {
	if s.Direction != DirectionClockwise && s.Direction != DirectionCounterclockwise {
		return fmt.Errorf("direction must be %d (clockwise) or %d (counterclockwise), got %d",
			DirectionClockwise, DirectionCounterclockwise, s.Direction)
	}
	if s.ResetAfter < 1 {
		return fmt.Errorf("reset_after must be at least 1, got %d", s.ResetAfter)
	}
	if s.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %g", s.Threshold)
	}
	return nil
}
