package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/geodash/internal/config"
	"github.com/vovakirdan/geodash/internal/games/geodash"
	"github.com/vovakirdan/geodash/internal/storage"
)

func TestResolveGameID(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{nil, geodash.GameID, false},
		{[]string{geodash.ClassicGameID}, geodash.ClassicGameID, false},
		{[]string{"flappy"}, "", true},
	}
	for _, tt := range tests {
		got, err := resolveGameID(tt.args)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("resolveGameID(%v) = %q, %v; want %q, err=%v", tt.args, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestLoadConfigLayers(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvNotifyKind, "log")
	t.Setenv(config.EnvNotifyToken, "secret")

	f := gameFlags{
		difficulty: "fixed",
		notify:     "webhook",
		notifyURL:  "https://example.com/scores",
		user:       "alice",
	}
	cfg, err := f.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	n := cfg.Notifier
	if n.Kind != "webhook" || n.URL != "https://example.com/scores" || n.UserID != "alice" {
		t.Errorf("flags did not override notifier: %+v", n)
	}
	if n.Token != "secret" {
		t.Errorf("token = %q, want value from environment", n.Token)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset left the ramp enabled")
	}
}

func TestLoadConfigRejectsUnknownDifficulty(t *testing.T) {
	f := gameFlags{difficulty: "insane"}
	if _, err := f.loadConfig(); err == nil {
		t.Error("loadConfig accepted an unknown difficulty")
	}
}

func TestPrintScores(t *testing.T) {
	mem := storage.NewMemory()
	for _, s := range []int{30, 50} {
		if _, err := mem.SaveScore(geodash.GameID, s); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := printScores(&buf, mem, geodash.GameID); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"High Scores - Geometry Dash", "Best: 50"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "50") > strings.Index(out, "30") {
		t.Errorf("scores not ordered best first:\n%s", out)
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printScores(&buf, storage.NewMemory(), geodash.ClassicGameID); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestListCommand(t *testing.T) {
	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	defer listCmd.SetOut(nil)

	runList(listCmd, nil)

	for _, want := range []string{geodash.GameID, geodash.ClassicGameID, "Geometry Dash Classic"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("list output lacks %q:\n%s", want, buf.String())
		}
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got, want := expandHome("~/.geodash/x.db"), filepath.Join(home, ".geodash", "x.db"); got != want {
		t.Errorf("expandHome = %q, want %q", got, want)
	}
	if got := expandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}
