package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tkrause/wallery/pkg/gallery"
	"github.com/tkrause/wallery/pkg/pipeline"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Wall.Width != pipeline.DefaultWallWidth {
		t.Errorf("Wall.Width = %v, want %v", cfg.Wall.Width, pipeline.DefaultWallWidth)
	}
	if cfg.Wall.Height != pipeline.DefaultWallHeight {
		t.Errorf("Wall.Height = %v, want %v", cfg.Wall.Height, pipeline.DefaultWallHeight)
	}
	if cfg.Layout.ParsedMode() != pipeline.DefaultMode {
		t.Errorf("Layout mode = %v, want %v", cfg.Layout.ParsedMode(), pipeline.DefaultMode)
	}
	if cfg.Layout.Margin != pipeline.DefaultMargin {
		t.Errorf("Layout.Margin = %v, want %v", cfg.Layout.Margin, pipeline.DefaultMargin)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := loadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("loadConfigFile() error for missing file: %v", err)
	}

	// Missing file falls back to defaults
	if cfg.Wall.Width != pipeline.DefaultWallWidth {
		t.Errorf("Wall.Width = %v, want default %v", cfg.Wall.Width, pipeline.DefaultWallWidth)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[wall]
width = 2400
height = 1600

[layout]
mode = "salon"
margin = 40
seed = 7

[render]
scale = 2.0
background = "#ffffff"
shadow = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile() error: %v", err)
	}

	if cfg.Wall.Width != 2400 || cfg.Wall.Height != 1600 {
		t.Errorf("wall = %v×%v, want 2400×1600", cfg.Wall.Width, cfg.Wall.Height)
	}
	if cfg.Layout.ParsedMode() != gallery.ModeSalon {
		t.Errorf("mode = %v, want salon", cfg.Layout.ParsedMode())
	}
	if cfg.Layout.Margin != 40 {
		t.Errorf("margin = %v, want 40", cfg.Layout.Margin)
	}
	if cfg.Layout.Seed != 7 {
		t.Errorf("seed = %v, want 7", cfg.Layout.Seed)
	}
	if !cfg.Render.Shadow {
		t.Error("shadow should be true")
	}
}

func TestLoadConfigFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[wall]\nwidth = 900\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile() error: %v", err)
	}

	if cfg.Wall.Width != 900 {
		t.Errorf("Wall.Width = %v, want 900", cfg.Wall.Width)
	}
	// Unset fields keep their defaults
	if cfg.Wall.Height != pipeline.DefaultWallHeight {
		t.Errorf("Wall.Height = %v, want default %v", cfg.Wall.Height, pipeline.DefaultWallHeight)
	}
}

func TestLoadConfigFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[wall\nwidth ="), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfigFile(path); err == nil {
		t.Error("loadConfigFile() should error on malformed TOML")
	}
}

func TestParsedModeFallback(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want gallery.Mode
	}{
		{"empty falls back to default", "", pipeline.DefaultMode},
		{"unknown falls back to default", "mosaic", pipeline.DefaultMode},
		{"valid mode", "symmetric", gallery.ModeSymmetric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := LayoutConfig{Mode: tt.mode}
			if got := l.ParsedMode(); got != tt.want {
				t.Errorf("ParsedMode() = %v, want %v", got, tt.want)
			}
		})
	}
}
