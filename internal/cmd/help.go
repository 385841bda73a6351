package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderRunHelp renders the help text for the run command with lipgloss styling
func renderRunHelp() string {
	// Define styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginTop(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))

	commandStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14"))

	commentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Italic(true)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Examples"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Interactive demo - four viewports, one rotation per second"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("rotationtest run"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Spin the other way and remember the choice"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("rotationtest run --direction ccw"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Fast bounded run with plain per-rotation logging"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("rotationtest run --plain --interval 100ms --duration 40ms --steps 500"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Viewports"))
	b.WriteString("\n")

	// Define viewport descriptions
	views := []struct {
		name string
		desc string
	}{
		{"relative", "adds 90° to the previous orientation each step; drift accumulates"},
		{"absolute", "sets orientation to step × 90°, recomputed every step"},
		{"table", "sets orientation from a precomputed quarter-turn table"},
		{"reset", "like relative, but rebuilds the scene every --reset-after rotations"},
	}

	// Calculate max name width for alignment
	maxWidth := 0
	for _, v := range views {
		if len(v.name) > maxWidth {
			maxWidth = len(v.name)
		}
	}

	// Render viewports with proper alignment
	for _, v := range views {
		padding := strings.Repeat(" ", maxWidth-len(v.name)+2)
		b.WriteString("  " + flagStyle.Render(v.name) + padding + commentStyle.Render(v.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Drift indicator"))
	b.WriteString("\n")
	b.WriteString("  " + commentStyle.Render("After each rotation the orientation is read back and its deviation"))
	b.WriteString("\n")
	b.WriteString("  " + commentStyle.Render("from the nearest 90° multiple is compared against --threshold."))
	b.WriteString("\n")

	return b.String()
}
