// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/darkforge/internal/analyzer"
	"github.com/jonathan/darkforge/internal/generator"
	"github.com/jonathan/darkforge/internal/server/ratelimit"
)

// EnvPrefix prefixes every environment override, e.g. DARKFORGE_LOG_LEVEL.
const EnvPrefix = "DARKFORGE"

// Config represents the CLI configuration. Values come from defaults, an
// optional YAML or JSON file and environment variables, in increasing precedence.
type Config struct {
	LogLevel    string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	DatabaseURL string `mapstructure:"database_url"`
	OutputDir   string `mapstructure:"output_dir" validate:"required"`

	Generator GeneratorConfig `mapstructure:"generator"`
	Analyzer  AnalyzerConfig  `mapstructure:"analyzer"`
	Export    ExportConfig    `mapstructure:"export"`
	Server    ServerConfig    `mapstructure:"server"`
}

// GeneratorConfig holds candidate volume settings. A zero CurrentYear means
// the caller fills in the wall-clock year.
type GeneratorConfig struct {
	TargetMin   int `mapstructure:"target_min" validate:"gte=0"`
	TargetMax   int `mapstructure:"target_max" validate:"gte=0"`
	CurrentYear int `mapstructure:"current_year" validate:"omitempty,min=1900,max=2100"`
}

// AnalyzerConfig mirrors analyzer.Config in file and env friendly form.
type AnalyzerConfig struct {
	Thresholds    []float64          `mapstructure:"thresholds" validate:"len=4,dive,gte=0"`
	Penalties     map[string]float64 `mapstructure:"penalties"`
	SymbolSetSize int                `mapstructure:"symbol_set_size" validate:"gt=0"`
	Workers       int                `mapstructure:"workers" validate:"gte=0"`
	Estimate      bool               `mapstructure:"estimate"`
}

// ExportConfig holds export defaults and bcrypt settings.
type ExportConfig struct {
	Format     string `mapstructure:"format" validate:"oneof=plain hashcat john"`
	HashType   string `mapstructure:"hash_type" validate:"oneof=md5 sha1 sha256 sha512 ntlm bcrypt"`
	BcryptCost int    `mapstructure:"bcrypt_cost"`
	Pepper     string `mapstructure:"pepper"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	Port      int             `mapstructure:"port" validate:"min=0,max=65535"`
	APIKey    string          `mapstructure:"api_key"`
	MaxBatch  int             `mapstructure:"max_batch" validate:"gte=0"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds per-client rate limiting settings.
type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultLimit    int           `mapstructure:"default_limit" validate:"gte=0"`
	DefaultWindow   time.Duration `mapstructure:"default_window" validate:"gte=0"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" validate:"gte=0"`
	Whitelist       []string      `mapstructure:"whitelist"`
	Blacklist       []string      `mapstructure:"blacklist"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("database_url", "")
	v.SetDefault("output_dir", "output")

	v.SetDefault("generator.target_min", 2000)
	v.SetDefault("generator.target_max", 4000)
	v.SetDefault("generator.current_year", 0)

	v.SetDefault("analyzer.thresholds", analyzer.DefaultThresholds[:])
	v.SetDefault("analyzer.penalties", analyzer.DefaultPenalties())
	v.SetDefault("analyzer.symbol_set_size", analyzer.DefaultSymbolSetSize)
	v.SetDefault("analyzer.workers", 0)
	v.SetDefault("analyzer.estimate", true)

	v.SetDefault("export.format", "plain")
	v.SetDefault("export.hash_type", "md5")
	v.SetDefault("export.bcrypt_cost", DefaultBcryptCost)
	v.SetDefault("export.pepper", "")

	rl := ratelimit.DefaultConfig()
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.api_key", "")
	v.SetDefault("server.max_batch", 10000)
	v.SetDefault("server.rate_limit.enabled", rl.Enabled)
	v.SetDefault("server.rate_limit.default_limit", rl.DefaultLimit)
	v.SetDefault("server.rate_limit.default_window", rl.DefaultWindow)
	v.SetDefault("server.rate_limit.cleanup_interval", rl.CleanupInterval)
	v.SetDefault("server.rate_limit.whitelist", []string{})
	v.SetDefault("server.rate_limit.blacklist", []string{})
}

// unprefixed environment names accepted alongside DARKFORGE_*
var envAliases = map[string]string{
	"database_url":                     "DATABASE_URL",
	"export.bcrypt_cost":               "BCRYPT_COST",
	"export.pepper":                    "PASSWORD_PEPPER",
	"server.rate_limit.enabled":        "RATE_LIMIT_ENABLED",
	"server.rate_limit.default_limit":  "RATE_LIMIT_DEFAULT_LIMIT",
	"server.rate_limit.default_window": "RATE_LIMIT_DEFAULT_WINDOW",
	"server.rate_limit.whitelist":      "RATE_LIMIT_WHITELIST",
	"server.rate_limit.blacklist":      "RATE_LIMIT_BLACKLIST",
}

// Load builds the configuration. An empty path skips the config file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, alias := range envAliases {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, alias); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Generator.TargetMin > 0 && c.Generator.TargetMax > 0 && c.Generator.TargetMin > c.Generator.TargetMax {
		return fmt.Errorf("config error: 'generator.target_min' must not exceed 'generator.target_max'")
	}
	if c.Generator.TargetMin > generator.MaxTarget || c.Generator.TargetMax > generator.MaxTarget {
		return fmt.Errorf("config error: generator targets must not exceed %d", generator.MaxTarget)
	}
	if _, err := c.Export.Password(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if _, err := c.AnalyzerSettings(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// AnalyzerSettings converts the analyzer section into an analyzer.Config.
func (c *Config) AnalyzerSettings() (analyzer.Config, error) {
	a := c.Analyzer
	if len(a.Thresholds) != len(analyzer.DefaultThresholds) {
		return analyzer.Config{}, fmt.Errorf("analyzer.thresholds needs %d values, got %d",
			len(analyzer.DefaultThresholds), len(a.Thresholds))
	}

	cfg := analyzer.Config{
		Penalties:     analyzer.DefaultPenalties(),
		SymbolSetSize: a.SymbolSetSize,
		Workers:       a.Workers,
		Estimate:      a.Estimate,
	}
	copy(cfg.Thresholds[:], a.Thresholds)
	for name, p := range a.Penalties {
		cfg.Penalties[name] = p
	}
	if err := cfg.Validate(); err != nil {
		return analyzer.Config{}, err
	}
	return cfg, nil
}

// RateLimitSettings converts the rate limit section into a limiter config.
func (c *Config) RateLimitSettings() *ratelimit.Config {
	rl := c.Server.RateLimit
	cfg := ratelimit.DefaultConfig()
	cfg.Enabled = rl.Enabled
	cfg.DefaultLimit = rl.DefaultLimit
	cfg.DefaultWindow = rl.DefaultWindow
	cfg.CleanupInterval = rl.CleanupInterval
	cfg.Whitelist = ratelimit.IPSet(splitList(rl.Whitelist))
	cfg.Blacklist = ratelimit.IPSet(splitList(rl.Blacklist))
	return cfg
}

// splitList also splits entries that arrived as one comma-separated string.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		out = append(out, strings.Split(item, ",")...)
	}
	return out
}
