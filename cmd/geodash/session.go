package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/geodash/internal/config"
	"github.com/vovakirdan/geodash/internal/games/geodash"
	"github.com/vovakirdan/geodash/internal/notify"
	"github.com/vovakirdan/geodash/internal/registry"
	"github.com/vovakirdan/geodash/internal/storage"
)

// gameFlags are shared by every command that runs the game.
type gameFlags struct {
	config     string
	difficulty string
	notify     string
	notifyURL  string
	user       string
}

func (f *gameFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.config, "config", "", "Path to a game config file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&f.notify, "notify", "", "Score report transport (see 'geodash notifiers')")
	cmd.Flags().StringVar(&f.notifyURL, "notify-url", "", "Endpoint for the webhook and websocket transports")
	cmd.Flags().StringVar(&f.user, "user", "", "User id attached to score reports")
}

// loadConfig resolves the game config: file, then GEODASH_* environment, then flags.
func (f *gameFlags) loadConfig() (config.GeoDashConfig, error) {
	preset, err := config.ParsePreset(f.difficulty)
	if err != nil {
		return config.GeoDashConfig{}, err
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		return config.GeoDashConfig{}, err
	}
	config.ApplyEnv(&cfg)

	if f.notify != "" {
		cfg.Notifier.Kind = f.notify
	}
	if f.notifyURL != "" {
		cfg.Notifier.URL = f.notifyURL
	}
	if f.user != "" {
		cfg.Notifier.UserID = f.user
	}
	config.ApplyPreset(&cfg, preset)

	return cfg, cfg.Validate()
}

// resolveGameID returns the variant named in args, defaulting to geodash.
func resolveGameID(args []string) (string, error) {
	id := geodash.GameID
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown game %q, run 'geodash list' to see available games", id)
	}
	return id, nil
}

// openStore opens the scores database, degrading to memory when it cannot.
func openStore(logger *log.Logger) storage.Backend {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores kept in memory", "db", flagDBPath, "error", err)
		return storage.NewMemory()
	}
	return store
}

// buildNotifier creates the asynchronous score reporter configured in cfg.
func buildNotifier(cfg config.NotifierConfig, logger *log.Logger) (*notify.Async, error) {
	kind := cfg.Kind
	if kind == "" {
		kind = "nop"
	}
	n, err := notify.Build(kind, notify.Options{
		URL:     cfg.URL,
		Token:   cfg.Token,
		Timeout: cfg.Timeout,
		Logger:  logger,
	}, cfg.QueueSize)
	if err != nil {
		return nil, fmt.Errorf("notifier %q: %w", kind, err)
	}
	return n, nil
}

// closeNotifier flushes pending reports before exit.
func closeNotifier(n *notify.Async, logger *log.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := n.Close(ctx); err != nil {
		logger.Warn("pending score reports dropped", "error", err)
	}
}

// runtimeDeps bundles what a running frontend owns and must release.
type runtimeDeps struct {
	cfg      config.GeoDashConfig
	store    storage.Backend
	notifier *notify.Async
	logger   *log.Logger
}

// setup loads config and opens the store and notifier.
func setup(f *gameFlags, logger *log.Logger) (*runtimeDeps, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, err
	}
	n, err := buildNotifier(cfg.Notifier, logger)
	if err != nil {
		return nil, err
	}
	return &runtimeDeps{
		cfg:      cfg,
		store:    openStore(logger),
		notifier: n,
		logger:   logger,
	}, nil
}

// newGame creates a variant bound to the shared store and notifier.
func (d *runtimeDeps) newGame(id, userID string) (registry.Game, error) {
	if userID == "" {
		userID = d.cfg.Notifier.UserID
	}
	return registry.Create(id, registry.Deps{
		Config:   d.cfg,
		Scores:   d.store,
		Notifier: d.notifier,
		Logger:   d.logger.With("game", id),
		UserID:   userID,
	})
}

func (d *runtimeDeps) close() {
	closeNotifier(d.notifier, d.logger)
	if err := d.store.Close(); err != nil {
		d.logger.Warn("closing scores database", "error", err)
	}
}
