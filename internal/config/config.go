package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything carfind needs to reach the backend.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	LogDir         string
}

const (
	defaultConfigPath = "~/.config/carfind/config.toml"
	defaultBaseURL    = "http://localhost:8080/api"
	defaultLogDir     = "~/.local/state/carfind"
	defaultTimeout    = 10 * time.Second
)

// Load locates and parses the carfind config, falling back to defaults when
// missing. Resolution order per field: environment variable (a .env file in
// the working directory is honored), then the TOML file, then the default.
func Load(path string) (Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:     defaultBaseURL,
		RequestTimeout: defaultTimeout,
		LogDir:         defaultLogDir,
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	raw, err := os.ReadFile(resolved)
	switch {
	case err == nil:
		var file struct {
			APIBaseURL     string `toml:"api_base_url"`
			TimeoutSeconds int    `toml:"request_timeout_seconds"`
			LogDir         string `toml:"log_dir"`
		}
		if err := toml.Unmarshal(raw, &file); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		if v := strings.TrimSpace(file.APIBaseURL); v != "" {
			cfg.APIBaseURL = v
		}
		if file.TimeoutSeconds > 0 {
			cfg.RequestTimeout = time.Duration(file.TimeoutSeconds) * time.Second
		}
		if v := strings.TrimSpace(file.LogDir); v != "" {
			cfg.LogDir = v
		}
	case os.IsNotExist(err):
		// Defaults apply; carfind works without a config file.
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	if v := strings.TrimSpace(os.Getenv("CARFIND_API_URL")); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("CARFIND_TIMEOUT_SECONDS")); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("invalid CARFIND_TIMEOUT_SECONDS %q", v)
		}
		cfg.RequestTimeout = time.Duration(seconds) * time.Second
	}
	if v := strings.TrimSpace(os.Getenv("CARFIND_LOG_DIR")); v != "" {
		cfg.LogDir = v
	}

	cfg.LogDir = mustExpand(cfg.LogDir)
	return cfg, nil
}

// LogPath returns the path of the client log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/carfind.log")
	}
	return filepath.Join(c.LogDir, "carfind.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
