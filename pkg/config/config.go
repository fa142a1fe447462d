package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/nqrduck/spectrometer-simulator/pkg/settings"
	"github.com/nqrduck/spectrometer-simulator/pkg/simulator"
)

// EnvPrefix prefixes environment variables read by Load
const EnvPrefix = "NQRSIM"

// Config holds host configuration for the simulator CLI
type Config struct {
	LogLevel        string            `mapstructure:"log_level"`
	NoColor         bool              `mapstructure:"no_color"`
	LinkEditor      bool              `mapstructure:"link_editor"`
	Averages        int               `mapstructure:"averages"`
	TargetFrequency float64           `mapstructure:"target_frequency"`
	Settings        map[string]string `mapstructure:"settings"`
}

// DefaultPath returns $HOME/.nqrsim/config.yaml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".nqrsim", "config.yaml"), nil
}

// New returns a viper instance with defaults and environment binding applied.
// Setting names contain dots, so nested keys are delimited with "::".
func New() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetDefault("log_level", "info")
	v.SetDefault("no_color", false)
	v.SetDefault("link_editor", false)
	v.SetDefault("averages", simulator.DefaultAverages)
	v.SetDefault("target_frequency", simulator.DefaultTargetFrequency)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path into v and decodes the result. A missing file is not an
// error when path is empty; the defaults and environment are used instead.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".nqrsim"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Apply pushes the scalars and setting overrides onto model. Every value
// goes through the model's validation; the first failure is returned.
func (c *Config) Apply(model *simulator.Model) error {
	if err := model.SetAverages(c.Averages); err != nil {
		return err
	}
	if err := model.SetTargetFrequency(c.TargetFrequency); err != nil {
		return err
	}

	// Overrides are applied in registration order so errors are deterministic.
	matched := 0
	for category, list := range model.CategoriesInOrder() {
		for _, s := range list {
			raw, ok := c.lookup(s.Name())
			if !ok {
				continue
			}
			matched++
			if err := model.SetString(s.Name(), raw); err != nil {
				return fmt.Errorf("%s setting: %w", category, err)
			}
		}
	}

	if matched != len(c.Settings) {
		return c.unknownOverride(model)
	}
	return nil
}

func (c *Config) unknownOverride(model *simulator.Model) error {
	known := make(map[string]bool)
	for _, list := range model.CategoriesInOrder() {
		for _, s := range list {
			known[strings.ToLower(s.Name())] = true
		}
	}
	for name := range c.Settings {
		if !known[strings.ToLower(name)] {
			return fmt.Errorf("%w: %s", settings.ErrUnknownSetting, name)
		}
	}
	return fmt.Errorf("setting overrides contain the same name more than once")
}

// lookup matches setting names case-insensitively since viper lowercases map keys
func (c *Config) lookup(name string) (string, bool) {
	if raw, ok := c.Settings[name]; ok {
		return raw, true
	}
	raw, ok := c.Settings[strings.ToLower(name)]
	return raw, ok
}
