package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DefaultLibrary   string   `koanf:"default_library"`    // library to open directly on startup
	ExtraSearchPaths []string `koanf:"extra_search_paths"` // additional roots for library discovery
	IconStyle        string   `koanf:"icon_style"`         // "nerd", "unicode" or "none"
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in default_library
	if cfg.DefaultLibrary != "" {
		cfg.DefaultLibrary = expandPath(cfg.DefaultLibrary)
	}

	// Expand ~ in extra_search_paths
	for i, src := range cfg.ExtraSearchPaths {
		cfg.ExtraSearchPaths[i] = expandPath(src)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/folio/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "folio", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
