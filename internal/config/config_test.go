package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Camera.Width != 1280 || cfg.Camera.Height != 720 {
		t.Errorf("camera = %dx%d, want 1280x720", cfg.Camera.Width, cfg.Camera.Height)
	}
	if cfg.Header.Height != 137 {
		t.Errorf("header height = %d, want 137", cfg.Header.Height)
	}
	if cfg.Header.CooldownFrames != 30 {
		t.Errorf("cooldown frames = %d, want 30", cfg.Header.CooldownFrames)
	}
	if cfg.Brush.Thickness != 25 {
		t.Errorf("brush thickness = %d, want 25", cfg.Brush.Thickness)
	}
	if cfg.Brush.EraserThickness != 100 {
		t.Errorf("eraser thickness = %d, want 100", cfg.Brush.EraserThickness)
	}
	if cfg.Brush.Color != [3]int{255, 0, 255} {
		t.Errorf("brush color = %v, want magenta BGR", cfg.Brush.Color)
	}
	if cfg.Paths.SnapshotPath != "portfolio_canvas.jpg" {
		t.Errorf("snapshot path = %q, want portfolio_canvas.jpg", cfg.Paths.SnapshotPath)
	}
	if cfg.OCRLanguage != "eng" {
		t.Errorf("ocr language = %q, want eng", cfg.OCRLanguage)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg != Default() {
		t.Error("missing file should yield default config")
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Error("empty path should yield default config")
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	yaml := `
camera:
  device_id: 2
brush:
  thickness: 40
watson:
  tts_api_key: test-key
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Camera.DeviceID != 2 {
		t.Errorf("device id = %d, want 2", cfg.Camera.DeviceID)
	}
	if cfg.Brush.Thickness != 40 {
		t.Errorf("brush thickness = %d, want 40", cfg.Brush.Thickness)
	}
	if cfg.Watson.TTSAPIKey != "test-key" {
		t.Errorf("tts api key = %q, want test-key", cfg.Watson.TTSAPIKey)
	}

	// Untouched fields keep their defaults
	if cfg.Header.Height != 137 {
		t.Errorf("header height = %d, want default 137", cfg.Header.Height)
	}
	if cfg.Watson.EnglishVoice != Default().Watson.EnglishVoice {
		t.Errorf("english voice = %q, want default", cfg.Watson.EnglishVoice)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(path, []byte("camera: [not a map"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := Default()
	cfg.Camera.DeviceID = 3
	cfg.ServerAddr = ":9090"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestResolveDataDir(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := Default()
	cfg.Paths.DataDir = filepath.Join(tmpDir, "state")

	dir, err := cfg.ResolveDataDir()
	if err != nil {
		t.Fatalf("ResolveDataDir() error = %v", err)
	}

	if dir != cfg.Paths.DataDir {
		t.Errorf("dir = %q, want %q", dir, cfg.Paths.DataDir)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("data dir should exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("data dir path is not a directory")
	}
}
