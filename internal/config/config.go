// Package config provides configuration management for mdnote using
// Viper.
//
// The configuration file lives at ~/.config/mdnote/config.yaml (or the
// current directory during development) and every key can be
// overridden through MDNOTE_-prefixed environment variables:
//
//	vault: ~/notes
//	editor: nvim
//	exclude:
//	  - .git
//	  - .obsidian
//	  - templates
//	log_level: info
package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mdnote/mdnote/internal/errors"
	"github.com/mdnote/mdnote/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "mdnote"

// Config represents the top-level configuration structure.
type Config struct {
	// Vault is the root directory holding the Markdown notes.
	Vault string `mapstructure:"vault" yaml:"vault"`

	// Editor overrides $EDITOR for the edit command.
	Editor string `mapstructure:"editor" yaml:"editor"`

	// Exclude lists directory names skipped during vault scans.
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`

	// SortKeys makes the fmt command order frontmatter fields
	// alphabetically instead of keeping the note's order.
	SortKeys bool `mapstructure:"sort_keys" yaml:"sort_keys"`

	// LogLevel sets the minimum log level (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Init initializes Viper with defaults and search paths. Call once at
// application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// search order: current directory first, then the XDG config dir
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	viper.SetEnvPrefix("MDNOTE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("vault", "")
	viper.SetDefault("editor", "")
	viper.SetDefault("exclude", []string{".git", ".obsidian", ".trash"})
	viper.SetDefault("sort_keys", false)
	viper.SetDefault("log_level", "info")
}

// Load reads the configuration. If path is non-empty it reads that
// exact file; otherwise it searches the default locations and falls
// back to defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, errors.Wrapf(errors.ErrInvalidConfig, "config file not found at %s", path)
			}
			// implicit load without a file uses defaults
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "%v", errs[0])
	}

	return &cfg, nil
}

// Default returns a configuration with default values only.
func Default() *Config {
	return &Config{
		Exclude:  []string{".git", ".obsidian", ".trash"},
		LogLevel: "info",
	}
}

// Validate checks a Config for validity. Returns nil when valid.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, errors.Newf("unknown log_level %q", cfg.LogLevel))
	}

	for _, name := range cfg.Exclude {
		if name == "" || strings.ContainsRune(name, filepath.Separator) {
			errs = append(errs, errors.Newf("exclude entries must be bare directory names, got %q", name))
		}
	}

	return errs
}
