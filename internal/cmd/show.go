package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/sjrankin/RotationTest/internal/settings"
	"gopkg.in/yaml.v3"
)

// printHighlightedSettings renders the settings as syntax-highlighted
// YAML. Highlighting failures fall back to the raw text rather than
// hiding the content.
func printHighlightedSettings(s settings.Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := quick.Highlight(os.Stdout, string(data), "yaml", "terminal256", "monokai"); err != nil {
		fmt.Print(string(data))
	}
	return nil
}
