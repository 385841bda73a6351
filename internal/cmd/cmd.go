package cmd

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sjrankin/RotationTest/internal/drift"
	"github.com/sjrankin/RotationTest/internal/harness"
	"github.com/sjrankin/RotationTest/internal/settings"
	"github.com/sjrankin/RotationTest/internal/strategy"
	"github.com/sjrankin/RotationTest/internal/ui"
	"github.com/sjrankin/RotationTest/internal/viewport"
	"github.com/sjrankin/RotationTest/version"
)

type CLI struct {
	Run        *RunCmd        `cmd:"" help:"Run the four-viewport rotation accuracy demo"`
	Check      *CheckCmd      `cmd:"" help:"Check a single angle for drift from the nearest 90° multiple"`
	Config     *ConfigCmd     `cmd:"" help:"Show or reset the persisted settings"`
	Version    *VersionCmd    `cmd:"" help:"Show version information"`
	Completion *CompletionCmd `cmd:"" help:"Generate shell completion scripts"`
}

type RunCmd struct {
	Direction  string        `help:"Rotation direction: cw or ccw (persisted for the next run)" enum:"cw,ccw," default:""`
	Interval   time.Duration `help:"Time between rotation starts" default:"1s"`
	Duration   time.Duration `help:"Length of each rotation animation" default:"450ms"`
	Threshold  float64       `help:"Drift tolerance in degrees (default: persisted setting)" default:"-1"`
	ResetAfter int           `help:"Rotations before the reset viewport rebuilds its scene (default: persisted setting)" default:"0"`
	NoReset    bool          `help:"Disable the periodic scene rebuild in the reset viewport"`
	Steps      int           `help:"Stop after this many rotations per viewport (0: run until interrupted)" default:"0"`
	Plain      bool          `help:"Log one line per rotation instead of repainting viewports"`
}

// Help adds additional help text with examples
func (r *RunCmd) Help() string {
	return renderRunHelp()
}

func (r *RunCmd) Run() error {
	path, err := settings.Path()
	if err != nil {
		return err
	}
	stored, err := settings.Load(path)
	if err != nil {
		return err
	}

	// The direction flag is the user interaction that updates the
	// persisted preference.
	if r.Direction != "" {
		stored.Direction = settings.DirectionClockwise
		if r.Direction == "ccw" {
			stored.Direction = settings.DirectionCounterclockwise
		}
		if err := stored.Save(path); err != nil {
			return err
		}
	}

	threshold := stored.Threshold
	if r.Threshold >= 0 {
		threshold = r.Threshold
	}
	resetAfter := stored.ResetAfter
	if r.ResetAfter > 0 {
		resetAfter = r.ResetAfter
	}

	dir := strategy.Clockwise
	if stored.Direction == settings.DirectionCounterclockwise {
		dir = strategy.Counterclockwise
	}

	cfg := harness.Config{
		Interval:   r.Interval,
		Duration:   r.Duration,
		Threshold:  threshold,
		ResetAfter: resetAfter,
		Direction:  dir,
		Steps:      r.Steps,
	}
	if r.NoReset || !stored.ResetEnabled {
		// Zero disables the periodic rebuild entirely.
		cfg.ResetAfter = 0
	}

	plain := r.Plain || ui.IsPlain()
	return runDemo(cfg, plain)
}

// runDemo wires the harness to either the live four-panel display or the
// plain per-rotation log.
func runDemo(cfg harness.Config, plain bool) error {
	var onReport func(drift.Report)
	if plain {
		onReport = printReport
	}

	h := harness.New(cfg, onReport)

	var render func()
	if !plain {
		vp := viewport.New(30, 12)
		render = func() {
			panels := make([]ui.Panel, 0, len(h.Fixtures()))
			for _, f := range h.Fixtures() {
				panels = append(panels, ui.Panel{
					Title:   f.Strategy.Name(),
					Content: vp.Render(f.Node),
					Footer: fmt.Sprintf("n=%d  %.4f°  Δ%.6f°",
						f.Steps, float64(f.Node.Rotation())*180/math.Pi, f.Last.Delta),
					Bad: f.Last.Bad,
				})
			}
			ui.ClearScreen()
			fmt.Println(ui.RenderPanels(panels))
			ui.PrintInfo(fmt.Sprintf("direction: %s   interval: %s   threshold: %g°   ctrl-c to stop",
				cfg.Direction, cfg.Interval, cfg.Threshold))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := h.Run(ctx, render)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// printReport logs one completed rotation in plain mode.
func printReport(r drift.Report) {
	line := fmt.Sprintf("%-8s step %4d  angle %12.6f rad  delta %.8f°",
		r.Strategy, r.Step, r.Angle, r.Delta)
	if r.Bad {
		ui.PrintWarning(line + "  drift exceeds threshold")
		return
	}
	ui.PrintStep(line)
}

type CheckCmd struct {
	Angle     float64 `arg:"" help:"Angle to check (radians unless --degrees)"`
	Degrees   bool    `help:"Interpret the angle as degrees"`
	Threshold float64 `help:"Drift tolerance in degrees (default: persisted setting)" default:"-1"`
}

func (c *CheckCmd) Run() error {
	threshold := c.Threshold
	if threshold < 0 {
		path, err := settings.Path()
		if err != nil {
			return err
		}
		stored, err := settings.Load(path)
		if err != nil {
			return err
		}
		threshold = stored.Threshold
	}

	angle := c.Angle
	if c.Degrees {
		angle = angle * math.Pi / 180
	}

	delta, bad := drift.Check(angle, threshold)

	ui.PrintKeyValue("Angle", fmt.Sprintf("%.9f rad (%.6f°)", angle, angle*180/math.Pi))
	ui.PrintKeyValue("Delta", fmt.Sprintf("%.9f° from the nearest 90° multiple", delta))
	ui.PrintKeyValue("Threshold", fmt.Sprintf("%g°", threshold))
	if bad {
		ui.PrintError("drift exceeds threshold")
		os.Exit(1)
	}
	ui.PrintSuccess("within threshold")
	return nil
}

type ConfigCmd struct {
	Path  bool `help:"Print the settings file path and exit"`
	Reset bool `help:"Restore the default settings"`
}

func (c *ConfigCmd) Run() error {
	path, err := settings.Path()
	if err != nil {
		return err
	}

	if c.Path {
		fmt.Println(path)
		return nil
	}

	if c.Reset {
		if err := settings.Default().Save(path); err != nil {
			return err
		}
		ui.PrintSuccess("settings restored to defaults")
	}

	stored, err := settings.Load(path)
	if err != nil {
		return err
	}

	ui.PrintHeader("Settings (" + path + ")")
	return printHighlightedSettings(stored)
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := version.Get()
	fmt.Println(info.String())
	return nil
}

// Parse parses command line arguments and executes the appropriate command
func Parse() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("rotationtest"),
		kong.Description("Visual accuracy test for repeated 90° scene rotations"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}
