// geodash is a Geometry Dash style side-scrolling runner for the terminal,
// a desktop window, or remote play over SSH.
//
// Usage:
//
//	geodash list              - List game variants
//	geodash play [game]       - Play in the terminal
//	geodash window [game]     - Play in a desktop window (build with -tags ebiten)
//	geodash serve             - Start SSH server for remote play
//	geodash scores [game]     - Show the score history of a variant
//	geodash board             - Interactive scoreboard
//	geodash notifiers         - List score report transports
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.geodash/scores.db)
//	--log-file <path>   - Terminal frontends log here (default: ~/.geodash/geodash.log)
//	--log-level <lvl>   - debug, info, warn or error
//	--env <path>        - dotenv file with GEODASH_* settings (default: .env)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/geodash/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/geodash/internal/games/geodash"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
	flagEnvFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "geodash",
	Short: "Geometry Dash - jump over obstacles in your terminal",
	Long: `Geometry Dash is a side-scrolling runner: jump over the obstacles
rushing towards you, every obstacle cleared is worth 10 points and the
game speeds up the longer you survive.

Available commands:
  list       - Show all game variants
  play       - Play in the terminal
  window     - Play in a desktop window
  serve      - Start SSH server for remote play
  scores     - View the score history
  board      - Interactive scoreboard
  notifiers  - Show score report transports

Examples:
  geodash play
  geodash play geodash_classic
  geodash play --difficulty hard --sound
  geodash serve --ssh :2222
  geodash scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := config.LoadEnv(flagEnvFile); err != nil {
			return err
		}
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.geodash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.geodash/geodash.log", "Log file used while a terminal frontend owns the screen")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env", ".env", "dotenv file with GEODASH_* overrides (ignored when missing)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(notifiersCmd)
}

// newLogger creates a logger at the --log-level threshold.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// openLogFile opens --log-file for appending. The returned close func is never nil.
// When the file cannot be opened logging is discarded after a warning on stderr.
func openLogFile() (io.Writer, func()) {
	path := expandHome(flagLogFile)
	if path == "" {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return io.Discard, func() {}
	}
	return f, func() { _ = f.Close() }
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
