package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", s, Default())
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	want := Settings{
		Direction:    DirectionCounterclockwise,
		ResetEnabled: false,
		ResetAfter:   25,
		Threshold:    0.005,
	}
	if err := want.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("direction: [not an int\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed YAML")
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad direction", "direction: 2\nreset_after: 10\nthreshold: 0.01\n"},
		{"zero reset_after", "direction: 0\nreset_after: 0\nthreshold: 0.01\n"},
		{"negative threshold", "direction: 0\nreset_after: 10\nthreshold: -0.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Error("Load() accepted invalid settings")
			}
		})
	}
}

func TestSave_RefusesInvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	s := Default()
	s.Threshold = 0
	if err := s.Save(path); err == nil {
		t.Error("Save() accepted invalid settings")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("invalid settings were written to disk")
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() is invalid: %v", err)
	}
}

func TestSave_WritesReadableYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := Default().Save(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"direction:", "reset_enabled:", "reset_after:", "threshold:"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("settings file missing %q:\n%s", key, data)
		}
	}
}
