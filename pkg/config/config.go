// Package config loads optional TOML overrides for a snapshot run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"foldersnap/pkg/combine"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

// DefaultFileName is looked up in the scanned root when no path is given.
const DefaultFileName = ".foldersnap.toml"

// Config mirrors the keys of the configuration file. Nil fields were not set.
type Config struct {
	StructureIgnore          []string `toml:"structure_ignore"`
	ContentIgnore            []string `toml:"content_ignore"`
	ContentIgnoredExtensions []string `toml:"content_ignored_extensions"`
	UseGitignore             *bool    `toml:"use_gitignore"`
	MaxWorkers               *int     `toml:"max_workers"`
}

// Load reads the configuration. With an empty customPath it looks for
// DefaultFileName in root and returns a zero Config if there is none; an
// explicit path that does not exist is an error.
func Load(customPath, root string, logger *zap.Logger) (Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var cfg Config

	configFile := customPath
	isCustom := customPath != ""
	if !isCustom {
		configFile = filepath.Join(root, DefaultFileName)
	}

	if _, err := os.Stat(configFile); err != nil {
		if errors.Is(err, os.ErrNotExist) && !isCustom {
			logger.Debug("No config file found, using profile defaults", zap.String("path", configFile))
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read config file '%s': %w", configFile, err)
	}

	meta, err := toml.DecodeFile(configFile, &cfg)
	if err != nil {
		logger.Error("Error decoding TOML config file", zap.String("path", configFile), zap.Error(err))
		return Config{}, fmt.Errorf("error decoding TOML from '%s': %w", configFile, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("Unrecognized keys found in config file", zap.String("path", configFile), zap.Strings("keys", keys))
	}

	logger.Info("Loaded configuration", zap.String("path", configFile))
	return cfg, nil
}

// Apply copies every set field onto args.
func (c Config) Apply(args *combine.Arguments) {
	if c.StructureIgnore != nil {
		args.StructureIgnore = c.StructureIgnore
	}
	if c.ContentIgnore != nil {
		args.ContentIgnore = c.ContentIgnore
	}
	if c.ContentIgnoredExtensions != nil {
		args.ContentIgnoredExtensions = c.ContentIgnoredExtensions
	}
	if c.UseGitignore != nil {
		args.UseGitignore = *c.UseGitignore
	}
	if c.MaxWorkers != nil {
		args.MaxWorkers = *c.MaxWorkers
	}
}
