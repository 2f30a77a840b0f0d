// Package config loads CLI settings from an optional file and GOCLT_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexiusacademia/goclt/internal/material"
)

// EnvPrefix is prepended to every environment override, e.g. GOCLT_LOG_LEVEL.
const EnvPrefix = "GOCLT"

type Config struct {
	Log struct {
		Level  string
		Format string
	} `mapstructure:"log"`

	Output struct {
		SignificantFigures int `mapstructure:"significant_figures"`
		Position           string
	} `mapstructure:"output"`

	// Materials are appended to the built-in catalog.
	Materials []material.Material `mapstructure:"materials"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.significant_figures", 3)
	v.SetDefault("output.position", "outer")
}

// Load reads path when it is non-empty, then applies environment overrides.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if n := c.Output.SignificantFigures; n < 1 || n > 17 {
		return fmt.Errorf("output.significant_figures must be between 1 and 17, got %d", n)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	for _, m := range c.Materials {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("materials: %w", err)
		}
	}
	return nil
}
