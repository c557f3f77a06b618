package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geodash/internal/platform/tui"
	"github.com/vovakirdan/geodash/internal/registry"
)

var (
	serveFlags      gameFlags
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve [game]",
	Short: "Start the Geometry Dash SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Every SSH connection gets its own independent run. The SSH user name is
attached to score reports, and all users share the same scoreboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.geodash/host_key

Examples:
  geodash serve                           # Listen on :23234 with auto-generated key
  geodash serve --ssh :2222               # Listen on port 2222
  geodash serve --host-key ./my_host_key  # Use specific host key
  geodash serve --notify websocket --notify-url ws://localhost:8080/scores

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveFlags.register(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting a session")
}

func runServe(_ *cobra.Command, args []string) error {
	gameID, err := resolveGameID(args)
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, "geodash-ssh")

	deps, err := setup(&serveFlags, logger)
	if err != nil {
		return err
	}
	defer deps.close()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: expandHome(flagHostKey),
		IdleTimeout: flagIdleTimeout,
		TickRate:    flagFPS,
	}, func(user string) (registry.Game, error) {
		return deps.newGame(gameID, user)
	}, deps.store, logger)
	if err != nil {
		return err
	}

	logger.Info("connect with: ssh localhost -p <port>", "game", gameID, "address", server.Addr())
	return server.ListenAndServe()
}
