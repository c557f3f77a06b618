package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/platform/sound"
	"github.com/vovakirdan/geodash/internal/platform/tui"
)

var (
	playFlags  gameFlags
	flagSound  bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. The game defaults to 'geodash'.

Controls:
  Space/Up/W/Click  - Start, jump, restart
  Enter             - Start
  R                 - Restart (after game over)
  Tab               - Scoreboard (outside a run)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower start, more room between obstacles
  normal - As configured
  hard   - Faster start, tighter spawns
  fixed  - No ramp, speed and spawn interval stay constant

Examples:
  geodash play
  geodash play --difficulty easy
  geodash play geodash_classic
  geodash play --config ./my-geodash.toml
  geodash play --notify webhook --notify-url https://example.com/scores --user alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playFlags.register(playCmd)
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects (needs a build with -tags sound)")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.3, "Sound volume between 0 and 1")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := resolveGameID(args)
	if err != nil {
		return err
	}

	// The terminal belongs to Bubble Tea, so logs go to a file.
	w, closeLog := openLogFile()
	defer closeLog()
	logger := newLogger(w, "geodash")

	deps, err := setup(&playFlags, logger)
	if err != nil {
		return err
	}
	defer deps.close()

	game, err := deps.newGame(gameID, "")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = tw, th
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting run", "game", gameID, "difficulty", deps.cfg.Difficulty.Preset, "notifier", deps.cfg.Notifier.Kind)

	if err := tui.Run(game, cfg, tui.Options{
		Scores: deps.store,
		Sound:  sound.Open(flagSound, flagVolume, logger),
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
