// Package config provides the configuration loader for symex.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/symex/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the working directory
// and then in the user's home directory.
const DefaultFilename = "symex.yaml"

// Config holds the settings for the explorer.
type Config struct {
	// ServerURL is the base URL of the SysML v2 model server.
	ServerURL string `yaml:"serverUrl"`
	// TimeoutSeconds is the fixed connect/read timeout of the HTTP client.
	TimeoutSeconds int `yaml:"timeoutSeconds"`
	// Parallelism bounds the worker pool used for child-element fetches.
	Parallelism int `yaml:"parallelism"`
	// PageSize is the page[size] used by batch element enumeration.
	PageSize int `yaml:"pageSize"`
	// OutputDir is where exports and reports are written.
	OutputDir string `yaml:"outputDir"`
	// LogFile, when set, receives a copy of all diagnostic log output.
	LogFile string `yaml:"logFile"`
	// CredentialsFile is a key=value properties file with username/password.
	CredentialsFile string `yaml:"credentialsFile"`
	// MaxDepth caps recursive tree rendering and full-graph walks.
	MaxDepth int `yaml:"maxDepth"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServerURL:      "http://localhost:9000",
		TimeoutSeconds: 30,
		Parallelism:    8,
		PageSize:       200,
		OutputDir:      "out",
		MaxDepth:       100,
	}
}

// Load reads the config file at path. A missing file yields the
// defaults; a present but unreadable or invalid file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return normalize(cfg), nil
}

// Discover resolves the config path: an explicit path wins, then
// ./symex.yaml, then ~/.config/symex/symex.yaml.
func Discover(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultFilename); err == nil {
		return DefaultFilename
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFilename
	}
	return filepath.Join(home, ".config", "symex", DefaultFilename)
}

func normalize(cfg Config) Config {
	def := Default()
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = def.TimeoutSeconds
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = def.Parallelism
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = def.PageSize
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = def.MaxDepth
	}
	return cfg
}
