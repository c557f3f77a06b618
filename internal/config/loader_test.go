package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultGeoDashConfig()
	if err := Decode(DefaultYAML(), ".yaml", &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultGeoDashConfig() {
		t.Errorf("embedded defaults differ from DefaultGeoDashConfig():\n got %+v\nwant %+v", cfg, DefaultGeoDashConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "geodash.yaml", `
physics:
  gravity: 1.2
obstacles:
  spawn_interval: 50
notifier:
  kind: webhook
  timeout: 2s
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("Gravity = %v, want 1.2", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.SpawnInterval != 50 {
		t.Errorf("SpawnInterval = %v, want 50", cfg.Obstacles.SpawnInterval)
	}
	if cfg.Notifier.Kind != "webhook" || cfg.Notifier.Timeout != 2*time.Second {
		t.Errorf("Notifier = %+v, want webhook with 2s timeout", cfg.Notifier)
	}
	// Untouched keys keep defaults
	if cfg.Player.Width != 45 {
		t.Errorf("Player.Width = %v, want default 45", cfg.Player.Width)
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "geodash.toml", `
[physics]
base_speed = 10.0
jump_impulse = -20.0

[scoring]
obstacle_reward = 25

[notifier]
kind = "websocket"
url = "ws://localhost:9000/scores"
timeout = "3s"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Physics.BaseSpeed != 10 || cfg.Physics.JumpImpulse != -20 {
		t.Errorf("Physics = %+v", cfg.Physics)
	}
	if cfg.Scoring.ObstacleReward != 25 {
		t.Errorf("ObstacleReward = %d, want 25", cfg.Scoring.ObstacleReward)
	}
	if cfg.Notifier.URL != "ws://localhost:9000/scores" || cfg.Notifier.Timeout != 3*time.Second {
		t.Errorf("Notifier = %+v", cfg.Notifier)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"unsupported extension", "geodash.json", `{}`, ErrUnsupportedFormat},
		{"invalid heights", "bad.yaml", "obstacles:\n  min_height: 90\n  max_height: 10\n", ErrInvalid},
		{"floor above interval", "floor.toml", "[obstacles]\nspawn_interval = 10.0\nmin_spawn_interval = 20.0\n", ErrInvalid},
		{"positive jump", "jump.yaml", "physics:\n  jump_impulse: 5\n", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			_, err := LoadFile(path)
			if !errors.Is(err, tt.want) {
				t.Errorf("LoadFile() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadFileUnknownKey(t *testing.T) {
	path := writeFile(t, t.TempDir(), "typo.yaml", "physics:\n  gravty: 2\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() should reject unknown keys")
	}
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg != DefaultGeoDashConfig() {
		t.Errorf("empty file changed config: %+v", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env",
		"GEODASH_NOTIFY_KIND=webhook\nGEODASH_NOTIFY_URL=http://host/score\nGEODASH_NOTIFY_TOKEN=secret\nGEODASH_USER_ID=player-7\n")

	for _, key := range []string{EnvNotifyKind, EnvNotifyURL, EnvNotifyToken, EnvUserID} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}

	cfg := DefaultGeoDashConfig()
	ApplyEnv(&cfg)

	want := NotifierConfig{
		Kind:      "webhook",
		URL:       "http://host/score",
		Token:     "secret",
		UserID:    "player-7",
		Timeout:   5 * time.Second,
		QueueSize: 8,
	}
	if cfg.Notifier != want {
		t.Errorf("Notifier = %+v, want %+v", cfg.Notifier, want)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("LoadEnv() on missing file = %v, want nil", err)
	}
	if err := LoadEnv(""); err != nil {
		t.Errorf("LoadEnv(\"\") = %v, want nil", err)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(\"insane\") should fail")
	}
}
