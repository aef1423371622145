// Package viper loads handbook configuration from a TOML file and the
// environment.
package viper

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/handbook"
	"github.com/fwojciec/handbook/guide"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. HANDBOOK_UI_LANDING.
const EnvPrefix = "HANDBOOK"

// Config holds application configuration.
type Config struct {
	UI       UIConfig
	Log      LogConfig
	Sections []SectionConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Landing   string
	Mouse     bool
	StatusTTL time.Duration `mapstructure:"status_ttl"`
}

// LogConfig holds logging settings. An empty File means the command's
// default destination.
type LogConfig struct {
	Level string
	File  string
}

// SectionConfig describes one catalog entry. Empty Label and nil Keywords
// fall back to the built-in values for the id.
type SectionConfig struct {
	ID       string
	Label    string
	Keywords []string
}

// Options control where configuration is read from.
type Options struct {
	// Path names a config file that must exist. It takes precedence over Dir.
	Path string
	// Dir is searched for config.toml when Path is empty. A missing file is
	// not an error.
	Dir string
}

// DefaultDir returns $XDG_CONFIG_HOME/handbook, or ~/.config/handbook when
// XDG_CONFIG_HOME is unset.
func DefaultDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "handbook")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "handbook")
}

// Load reads configuration from file and env. Env var overrides use prefix
// HANDBOOK_. Returns EINVALID if the file cannot be read or decoded.
func Load(opts Options) (*Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.landing", guide.DefaultLanding.String())
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.status_ttl", 4*time.Second)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	if opts.Path != "" {
		v.SetConfigFile(opts.Path)
	} else {
		dir := opts.Dir
		if dir == "" {
			dir = DefaultDir()
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, handbook.Errorf(handbook.EINVALID, "read config: %v", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, handbook.Errorf(handbook.EINVALID, "decode config: %v", err)
	}
	return &c, nil
}

// Catalog builds the section catalog. Without configured sections it is the
// built-in catalog; otherwise the configured sections replace it, in order.
func (c *Config) Catalog() (*handbook.Catalog, error) {
	if len(c.Sections) == 0 {
		return handbook.NewCatalog(guide.DefaultSections())
	}

	sections := make([]handbook.Section, 0, len(c.Sections))
	for i, sc := range c.Sections {
		id, err := handbook.ParseSectionID(sc.ID)
		if err != nil {
			return nil, handbook.Errorf(handbook.EINVALID, "sections[%d]: %s", i, handbook.ErrorMessage(err))
		}

		s := handbook.Section{ID: id, Label: sc.Label, Keywords: sc.Keywords}
		if def, ok := guide.DefaultSection(id); ok {
			if s.Label == "" {
				s.Label = def.Label
			}
			if s.Keywords == nil {
				s.Keywords = def.Keywords
			}
		}
		sections = append(sections, s)
	}
	return handbook.NewCatalog(sections)
}

// Landing returns the landing section, which must be a member of catalog.
func (c *Config) Landing(catalog *handbook.Catalog) (handbook.SectionID, error) {
	id, err := handbook.ParseSectionID(c.UI.Landing)
	if err != nil {
		return 0, handbook.Errorf(handbook.EINVALID, "ui.landing: %s", handbook.ErrorMessage(err))
	}
	if !catalog.Has(id) {
		return 0, handbook.Errorf(handbook.EINVALID, "ui.landing: section %s is not in the catalog", id)
	}
	return id, nil
}

// LogLevel parses Log.Level ("debug", "info", "warn" or "error").
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, handbook.Errorf(handbook.EINVALID, "log.level: unknown level %q", c.Log.Level)
	}
	return level, nil
}
