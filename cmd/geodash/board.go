package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/geodash/internal/platform/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive scoreboard",
	Long: `Browse the score history of every variant.

Controls:
  Up/Down          - Scroll
  Tab/Left/Right   - Switch variant
  Esc/B, Q         - Leave`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	store := openStore(newLogger(io.Discard, "geodash"))
	defer store.Close()

	_, err := tui.RunScoreboard(store, width, height)
	return err
}
