package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files with an unknown extension.
var ErrUnsupportedFormat = errors.New("config: unsupported format")

// configNames are tried in order inside each search directory.
var configNames = []string{"geodash.yaml", "geodash.yml", "geodash.toml"}

// Environment variables that override the notifier section.
const (
	EnvNotifyKind  = "GEODASH_NOTIFY_KIND"
	EnvNotifyURL   = "GEODASH_NOTIFY_URL"
	EnvNotifyToken = "GEODASH_NOTIFY_TOKEN"
	EnvUserID      = "GEODASH_USER_ID"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.geodash/configs/geodash.{yaml,yml,toml}
// -> ./configs/geodash.{yaml,yml,toml} -> embedded default.
// Only an explicit customPath reports read or parse errors; the other
// locations are skipped when unreadable.
func Load(customPath string) (GeoDashConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	dirs := []string{userConfigDir(), "configs"}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, name := range configNames {
			if cfg, err := LoadFile(filepath.Join(dir, name)); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := DefaultGeoDashConfig()
	if err := yaml.Unmarshal(defaultGeoDashYAML, &cfg); err != nil {
		return DefaultGeoDashConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads and validates a single config file.
// Missing keys keep their default values.
func LoadFile(path string) (GeoDashConfig, error) {
	cfg := DefaultGeoDashConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(data, filepath.Ext(path), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the format named by ext (".yaml", ".yml" or ".toml") into cfg.
func Decode(data []byte, ext string, cfg *GeoDashConfig) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document keeps every default.
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown keys: %v", undecoded)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// LoadEnv loads KEY=VALUE pairs from a dotenv file into the process
// environment. A missing file is not an error.
func LoadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: cannot load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides notifier settings from GEODASH_* environment variables.
func ApplyEnv(cfg *GeoDashConfig) {
	if v := os.Getenv(EnvNotifyKind); v != "" {
		cfg.Notifier.Kind = v
	}
	if v := os.Getenv(EnvNotifyURL); v != "" {
		cfg.Notifier.URL = v
	}
	if v := os.Getenv(EnvNotifyToken); v != "" {
		cfg.Notifier.Token = v
	}
	if v := os.Getenv(EnvUserID); v != "" {
		cfg.Notifier.UserID = v
	}
}

// userConfigDir returns ~/.geodash/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".geodash", "configs")
}
