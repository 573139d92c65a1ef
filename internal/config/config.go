package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents runtime configuration for the service.
type Config struct {
	BasicConfig BasicConfig   `json:"basic_config"`
	Gemini      GeminiConfig  `json:"gemini"`
	Extract     ExtractConfig `json:"extract"`
}

type BasicConfig struct {
	ServerAddress string `json:"server_address"`
	StaticDir     string `json:"static_dir"`
	MaxBodyMB     int64  `json:"max_body_mb"`
}

type GeminiConfig struct {
	APIKey string `json:"api_key"`
	Model  string `json:"model"`
}

type ExtractConfig struct {
	HWPTool        string `json:"hwp_tool"`
	TempDir        string `json:"temp_dir"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// Load reads configuration from the provided path (defaults to
// config.json). A missing file is not an error: the service can run on
// defaults plus environment variables. GEMINI_API_KEY and PORT always
// override the file.
func Load(path string) (*Config, error) {
	cfg := &Config{
		BasicConfig: BasicConfig{
			ServerAddress: ":3001",
			StaticDir:     "dist",
			MaxBodyMB:     50,
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		Extract: ExtractConfig{
			HWPTool:        "hwp5txt",
			TimeoutSeconds: 30,
		},
	}

	explicit := path != ""
	if path == "" {
		path = "config.json"
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("open config %s: %w", absPath, err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.Gemini.APIKey = key
	}
	if key := os.Getenv("API_KEY"); key != "" && cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = key
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.BasicConfig.ServerAddress = ":" + port
	}
}
