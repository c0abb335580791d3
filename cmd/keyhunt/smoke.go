package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/quadkeys/keyhunt/internal/core"
	"github.com/quadkeys/keyhunt/internal/registry"
	"github.com/quadkeys/keyhunt/internal/sim"
)

var smokeCmd = &cobra.Command{
	Use:   "smoke [variant]",
	Short: "Run a headless sanity check",
	Long: `Drive a variant for a few simulated seconds without a terminal UI and
verify the simulation responds to input. With no argument, checks every
registered variant.

Useful after editing the arena config to make sure the numbers still
produce a playable mission.

Examples:
  keyhunt smoke
  keyhunt smoke rooms`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSmoke,
}

func runSmoke(_ *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "smoke",
	})

	var ids []string
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'keyhunt list' to see available variants.")
			os.Exit(1)
		}
		ids = []string{args[0]}
	} else {
		for _, info := range registry.List() {
			ids = append(ids, info.ID)
		}
	}

	failed := false
	for _, id := range ids {
		if err := smokeOne(logger, id); err != nil {
			logger.Error("variant failed", "id", id, "err", err)
			failed = true
			continue
		}
		logger.Info("variant ok", "id", id)
	}

	if failed {
		os.Exit(1)
	}
}

// smokeOne resets the variant with a fixed seed, holds "up" for 90 ticks
// and checks the player actually moved and the HUD renders.
func smokeOne(logger *log.Logger, id string) error {
	game, err := registry.Create(id)
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	game.Reset(cfg)

	wg, ok := game.(interface{ World() *sim.World })
	if !ok {
		return fmt.Errorf("variant does not expose its world")
	}
	start := wg.World().Player().Position()

	frame := core.NewInputFrame()
	frame.Set(core.ActionUp)
	for i := 0; i < 90; i++ {
		game.Step(frame)
	}

	end := wg.World().Player().Position()
	moved := end.Sub(start).Length()
	if moved < 0.5 {
		return fmt.Errorf("player barely moved (%.3f units in 90 ticks)", moved)
	}
	logger.Debug("player moved", "id", id, "units", fmt.Sprintf("%.2f", moved))

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	game.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "SCORE") {
		return fmt.Errorf("render output missing HUD")
	}
	if !strings.ContainsRune(out, '█') {
		return fmt.Errorf("render output missing arena walls")
	}

	return nil
}
