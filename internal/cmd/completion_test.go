package cmd

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// what it wrote.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if runErr != nil {
		t.Fatalf("command failed: %v", runErr)
	}
	return string(out)
}

func TestCompletion_GeneratesAllShells(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish"} {
		t.Run(shell, func(t *testing.T) {
			cmd := &CompletionCmd{Shell: shell}
			out := captureStdout(t, cmd.Run)

			for _, want := range []string{"run", "check", "config", "completion", "rotationtest"} {
				if !strings.Contains(out, want) {
					t.Errorf("%s completion missing %q", shell, want)
				}
			}
		})
	}
}

func TestCompletion_RejectsUnknownShell(t *testing.T) {
	cmd := &CompletionCmd{Shell: "powershell"}
	if err := cmd.Run(); err == nil {
		t.Error("unknown shell accepted")
	}
}
