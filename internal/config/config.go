package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// FileName is the config file at the blog root.
	FileName = "config.toml"

	defaultTheme = "simple"
)

// Config mirrors config.toml.
type Config struct {
	Blog BlogConfig `toml:"blog" mapstructure:"blog"`
}

type BlogConfig struct {
	Theme string `toml:"theme" mapstructure:"theme"`
}

// Default is the configuration written by `mdblog init`.
func Default() *Config {
	return &Config{
		Blog: BlogConfig{Theme: defaultTheme},
	}
}

// Path returns the config file location for a blog root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Load reads root/config.toml. A missing file yields the defaults.
func Load(root string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(Path(root))
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Write serializes cfg to root/config.toml.
func Write(root string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(Path(root), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("blog.theme", defaultTheme)
}
