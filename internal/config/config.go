// Package config loads fractiz settings from defaults, an optional YAML
// file, FRACTIZ_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DevSecret is the session secret used when none is configured.
const DevSecret = "change-me-dev-key"

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Session       SessionConfig       `mapstructure:"session"`
	KnowledgeBase KnowledgeBaseConfig `mapstructure:"knowledge_base"`
	Store         StoreConfig         `mapstructure:"store"`
	Log           LogConfig           `mapstructure:"log"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
	Metrics       MetricsConfig       `mapstructure:"metrics"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release, test
}

type SessionConfig struct {
	Secret     string `mapstructure:"secret"`
	CookieName string `mapstructure:"cookie_name"`
	Secure     bool   `mapstructure:"secure"`
}

type KnowledgeBaseConfig struct {
	Path string `mapstructure:"path"` // empty: fractions_its.owl next to the binary
}

type StoreConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"` // empty: XDG data dir
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type RateLimitConfig struct {
	PerMinute int `mapstructure:"per_minute"` // POSTs per client IP, 0 disables
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// New returns a viper instance with every default set and environment
// lookup enabled.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("session.secret", DevSecret)
	v.SetDefault("session.cookie_name", "fractiz_session")
	v.SetDefault("session.secure", false)
	v.SetDefault("knowledge_base.path", "")
	v.SetDefault("store.enabled", true)
	v.SetDefault("store.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("rate_limit.per_minute", 120)
	v.SetDefault("metrics.enabled", true)

	v.SetEnvPrefix("FRACTIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads configuration into a Config. If file is empty, fractiz.yaml is
// looked up in the working directory and in $XDG_CONFIG_HOME/fractiz; a
// missing file is not an error. An explicit file must exist.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("fractiz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects unusable settings and returns warnings for risky ones.
func (c *Config) Validate() (warnings []string, err error) {
	if c.Session.Secret == "" {
		return nil, errors.New("session.secret must not be empty")
	}
	if c.Session.CookieName == "" {
		return nil, errors.New("session.cookie_name must not be empty")
	}
	if c.RateLimit.PerMinute < 0 {
		return nil, fmt.Errorf("rate_limit.per_minute must be >= 0, got %d", c.RateLimit.PerMinute)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("server.mode %q: want debug, release or test", c.Server.Mode)
	}

	if c.Server.Mode == "release" {
		if c.Session.Secret == DevSecret {
			warnings = append(warnings, "session.secret is the development default; set FRACTIZ_SESSION_SECRET")
		} else if len(c.Session.Secret) < 32 {
			warnings = append(warnings, fmt.Sprintf("session.secret is short (%d chars), use at least 32", len(c.Session.Secret)))
		}
	}
	return warnings, nil
}

func configDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "fractiz")
}
