package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geodash/internal/games/geodash"
	"github.com/vovakirdan/geodash/internal/platform/sound"
	"github.com/vovakirdan/geodash/internal/platform/window"
)

var (
	windowFlags  gameFlags
	flagWinSound bool
	flagWidth    int
	flagHeight   int
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window rendering the run with ebiten.
The window frontend is compiled only with: go build -tags ebiten

Controls:
  Space/Up/Click/Tap  - Start, jump, restart
  Enter               - Start
  R                   - Restart (after game over)
  Q/Esc               - Quit

Examples:
  geodash window
  geodash window --width 1024 --height 768 --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowFlags.register(windowCmd)
	windowCmd.Flags().BoolVar(&flagWinSound, "sound", true, "Play sound effects (needs a build with -tags sound)")
	windowCmd.Flags().Float64Var(&flagVolume, "volume", 0.3, "Sound volume between 0 and 1")
	windowCmd.Flags().IntVar(&flagWidth, "width", 800, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 600, "Window height in pixels")
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID, err := resolveGameID(args)
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, "geodash")

	deps, err := setup(&windowFlags, logger)
	if err != nil {
		return err
	}
	defer deps.close()

	g, err := deps.newGame(gameID, "")
	if err != nil {
		return err
	}
	game, ok := g.(*geodash.Game)
	if !ok {
		return fmt.Errorf("game %q cannot be shown in a window", gameID)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	err = window.Run(window.Options{
		Game:     game,
		Sound:    sound.Open(flagWinSound, flagVolume, logger),
		Title:    game.Title(),
		Width:    flagWidth,
		Height:   flagHeight,
		TickRate: flagFPS,
		Seed:     seed,
		OnRunEnded: func(score int) {
			if score <= 0 {
				return
			}
			if _, err := deps.store.SaveScore(gameID, score); err != nil {
				logger.Warn("saving score failed", "game", gameID, "score", score, "error", err)
			}
		},
	})
	if errors.Is(err, window.ErrNotBuilt) {
		return errors.New("this binary was built without the window frontend, rebuild with -tags ebiten")
	}
	return err
}
