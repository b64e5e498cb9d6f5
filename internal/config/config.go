package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultURL is used when no URL is configured anywhere.
const DefaultURL = "http://localhost:8080"

// Environment variables consulted between flags and the config file.
const (
	EnvURL   = "BLAZE_URL"
	EnvToken = "BLAZE_TOKEN"
)

// File holds the persisted configuration. The API token deliberately
// lives in a separate file and never round-trips through TOML, so it
// cannot leak into a serialized or logged config value.
type File struct {
	URL string `toml:"url"`
}

// Config is the fully resolved in-memory configuration for one invocation.
type Config struct {
	URL   string
	Token string
}

// Dir returns the blaze config directory (~/.config/blaze).
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, "blaze"), nil
}

// Path returns the config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// TokenPath returns the token file path.
func TokenPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "token"), nil
}

// LoadFile parses the config file at path, or the default location when
// path is empty. A missing file yields the zero value.
func LoadFile(path string) (File, error) {
	var cfg File

	resolved, err := resolvePath(path)
	if err != nil {
		return cfg, err
	}

	f, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config %s: %w", resolved, err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	return cfg, nil
}

// Save writes the config file, creating the directory as needed.
func (f File) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	path := filepath.Join(dir, "config.toml")
	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Resolve merges flag values, environment variables, and the persisted
// files into one Config, in that precedence order. configPath overrides
// the default config file location when non-empty.
func Resolve(urlFlag, tokenFlag, configPath string) (Config, error) {
	file, err := LoadFile(configPath)
	if err != nil {
		return Config{}, err
	}

	token, err := LoadToken()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		URL:   firstNonEmpty(urlFlag, os.Getenv(EnvURL), file.URL, DefaultURL),
		Token: firstNonEmpty(tokenFlag, os.Getenv(EnvToken), token),
	}
	cfg.URL = strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) != "" {
		return filepath.Abs(strings.TrimSpace(path))
	}
	return Path()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
