package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.Distance != 2.2 {
		t.Errorf("expected camera distance 2.2, got %f", cfg.Camera.Distance)
	}
	if cfg.Camera.MinDistance != 1.2 || cfg.Camera.MaxDistance != 8.0 {
		t.Errorf("expected distance clamp [1.2, 8.0], got [%f, %f]",
			cfg.Camera.MinDistance, cfg.Camera.MaxDistance)
	}
	if cfg.Camera.DragSensitivity != 0.01 {
		t.Errorf("expected drag sensitivity 0.01, got %f", cfg.Camera.DragSensitivity)
	}

	if cfg.Astro.RotationInterval.Std() != time.Minute {
		t.Errorf("expected rotation interval 1m, got %v", cfg.Astro.RotationInterval)
	}
	if cfg.Astro.SunInterval.Std() != time.Hour {
		t.Errorf("expected sun interval 1h, got %v", cfg.Astro.SunInterval)
	}
	if cfg.Astro.PreciseSun {
		t.Error("expected precise sun to be off by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  distance: 3.5
  min_distance: 1.5
  max_distance: 12.0
  drag_sensitivity: 0.02
  tilt_sensitivity: 0.1

astro:
  rotation_interval: 30s
  sun_interval: 10m
  precise_sun: true

logging:
  level: "debug"
  log_file: "globe.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Window.Width)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Camera.Distance != 3.5 {
		t.Errorf("expected camera distance 3.5, got %f", cfg.Camera.Distance)
	}
	if cfg.Camera.MaxDistance != 12.0 {
		t.Errorf("expected max distance 12.0, got %f", cfg.Camera.MaxDistance)
	}

	if cfg.Astro.RotationInterval.Std() != 30*time.Second {
		t.Errorf("expected rotation interval 30s, got %v", cfg.Astro.RotationInterval)
	}
	if cfg.Astro.SunInterval.Std() != 10*time.Minute {
		t.Errorf("expected sun interval 10m, got %v", cfg.Astro.SunInterval)
	}
	if !cfg.Astro.PreciseSun {
		t.Error("expected precise sun to be true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "globe.log" {
		t.Errorf("expected log file 'globe.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Window.Width = 800
	cfg.Astro.SunInterval = Duration(15 * time.Minute)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Window.Width != 800 {
		t.Errorf("expected width 800 after round trip, got %d", loaded.Window.Width)
	}
	if loaded.Astro.SunInterval.Std() != 15*time.Minute {
		t.Errorf("expected sun interval 15m after round trip, got %v", loaded.Astro.SunInterval)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "distance flag",
			setup: func() {
				*flagDistance = 4.5
			},
			verify: func(cfg *Config) {
				if cfg.Camera.Distance != 4.5 {
					t.Errorf("expected camera distance 4.5, got %f", cfg.Camera.Distance)
				}
			},
			teardown: func() {
				*flagDistance = 0
			},
		},
		{
			name: "precise sun flag",
			setup: func() {
				*flagPreciseSun = true
			},
			verify: func(cfg *Config) {
				if !cfg.Astro.PreciseSun {
					t.Error("expected precise sun to be enabled")
				}
			},
			teardown: func() {
				*flagPreciseSun = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}
