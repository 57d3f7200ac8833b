package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tkrause/wallery/pkg/gallery"
	"github.com/tkrause/wallery/pkg/pipeline"
)

// Config holds user preferences loaded from ~/.config/wallery/config.toml.
// Every field has a sensible default, so a missing file is not an error.
type Config struct {
	Wall   WallConfig   `toml:"wall"`
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
}

// WallConfig sets the default wall dimensions in wall units.
type WallConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// LayoutConfig sets the default arrangement parameters.
type LayoutConfig struct {
	Mode   string  `toml:"mode"`
	Margin float64 `toml:"margin"`
	Seed   uint64  `toml:"seed"`
}

// RenderConfig sets the default rendering parameters.
type RenderConfig struct {
	Scale      float64 `toml:"scale"`
	Background string  `toml:"background"`
	Matte      float64 `toml:"matte"`
	Shadow     bool    `toml:"shadow"`
}

// ParsedMode returns the configured mode, falling back to the pipeline
// default when unset or unrecognized.
func (l LayoutConfig) ParsedMode() gallery.Mode {
	if l.Mode == "" {
		return pipeline.DefaultMode
	}
	mode, err := gallery.ParseMode(l.Mode)
	if err != nil {
		return pipeline.DefaultMode
	}
	return mode
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Wall: WallConfig{
			Width:  pipeline.DefaultWallWidth,
			Height: pipeline.DefaultWallHeight,
		},
		Layout: LayoutConfig{
			Mode:   string(pipeline.DefaultMode),
			Margin: pipeline.DefaultMargin,
			Seed:   pipeline.DefaultSeed,
		},
		Render: RenderConfig{
			Scale:      1.0,
			Background: "",
			Matte:      0,
			Shadow:     false,
		},
	}
}

// configPath returns the config file path using XDG standard
// (~/.config/wallery/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// LoadConfig reads the user's config file, merging it over the defaults.
// A missing file returns the defaults without error; a malformed file
// returns an error so the caller can warn and continue.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
