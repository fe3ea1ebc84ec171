// Package config provides configuration for the AirDraw paint application.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Camera holds webcam capture settings.
type Camera struct {
	DeviceID int `yaml:"device_id"`
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
}

// Brush holds drawing and erasing stroke settings.
// Color is BGR, matching the OpenCV channel order.
type Brush struct {
	Thickness       int    `yaml:"thickness"`
	EraserThickness int    `yaml:"eraser_thickness"`
	Color           [3]int `yaml:"color"`
}

// Header holds the touch-free menu settings.
type Header struct {
	Height         int `yaml:"height"`
	CooldownFrames int `yaml:"cooldown_frames"`
}

// Paths holds file locations used by the application.
type Paths struct {
	SnapshotPath string `yaml:"snapshot_path"`
	SpeechPath   string `yaml:"speech_path"`
	OverlayDir   string `yaml:"overlay_dir"`
	DataDir      string `yaml:"data_dir"`
}

// Watson holds IBM Watson service credentials and settings.
// The translate service converts English text to French before synthesis.
type Watson struct {
	TTSAPIKey        string `yaml:"tts_api_key"`
	TTSURL           string `yaml:"tts_url"`
	TranslateAPIKey  string `yaml:"translate_api_key"`
	TranslateURL     string `yaml:"translate_url"`
	TranslateVersion string `yaml:"translate_version"`
	EnglishVoice     string `yaml:"english_voice"`
	FrenchVoice      string `yaml:"french_voice"`
	TranslateModel   string `yaml:"translate_model"`
}

// Config is the top-level application configuration.
type Config struct {
	Camera       Camera  `yaml:"camera"`
	Brush        Brush   `yaml:"brush"`
	Header       Header  `yaml:"header"`
	Paths        Paths   `yaml:"paths"`
	Watson       Watson  `yaml:"watson"`
	OCRLanguage  string  `yaml:"ocr_language"`
	ServerAddr   string  `yaml:"server_addr"`
	MotionThresh float64 `yaml:"motion_threshold"`
}

// Default returns the configuration used when no file overrides are given.
// Values mirror the tuned constants of the paint interface: 1280x720
// capture, a 137px header strip and a 30 frame mode-change cooldown.
func Default() Config {
	return Config{
		Camera: Camera{
			DeviceID: 0,
			Width:    1280,
			Height:   720,
		},
		Brush: Brush{
			Thickness:       25,
			EraserThickness: 100,
			Color:           [3]int{255, 0, 255},
		},
		Header: Header{
			Height:         137,
			CooldownFrames: 30,
		},
		Paths: Paths{
			SnapshotPath: "portfolio_canvas.jpg",
			SpeechPath:   "speech.mp3",
			OverlayDir:   "interface",
		},
		Watson: Watson{
			TTSURL:           "https://api.us-east.text-to-speech.watson.cloud.ibm.com",
			TranslateURL:     "https://api.us-south.language-translator.watson.cloud.ibm.com",
			TranslateVersion: "2018-05-01",
			EnglishVoice:     "en-US_EmmaExpressive",
			FrenchVoice:      "fr-FR_ReneeV3Voice",
			TranslateModel:   "en-fr",
		},
		OCRLanguage:  "eng",
		ServerAddr:   ":8080",
		MotionThresh: 1.0,
	}
}

// Load reads a YAML configuration file and merges it over the defaults.
// A missing path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func Save(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolveDataDir returns the directory for the database and other persistent
// state, creating it if needed. Defaults to ~/.airdraw.
func (c Config) ResolveDataDir() (string, error) {
	dir := c.Paths.DataDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".airdraw")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
