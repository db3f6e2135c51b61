// Package config loads runtime settings from defaults, a YAML file,
// SEASONS_* environment variables and command-line flags
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lixenwraith/seasons/input"
	"github.com/lixenwraith/seasons/parameter"
	"github.com/lixenwraith/seasons/particle"
	"github.com/lixenwraith/seasons/season"
	"github.com/lixenwraith/seasons/terminal"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SEASONS"

// Default configuration values
const (
	defaultConfigName = ".seasons"
	defaultLogFile    = "logs/seasons.log"
	defaultLogLevel   = "info"
	defaultColor      = "auto"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configuration for the application
type Config struct {
	Particles ParticlesConfig `mapstructure:"particles"`
	Render    RenderConfig    `mapstructure:"render"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	// Seed feeds the particle RNG, 0 seeds from the clock
	Seed int64 `mapstructure:"seed"`
	// Season is selected at startup when set
	Season string `mapstructure:"season"`
	// Keys overrides default bindings, key name to action name
	Keys map[string]string `mapstructure:"keys"`
}

// ParticlesConfig holds batch spawn tuning
type ParticlesConfig struct {
	BatchSize      int           `mapstructure:"batch_size"`
	Stagger        time.Duration `mapstructure:"stagger"`
	BatchTimeout   time.Duration `mapstructure:"batch_timeout"`
	MinDuration    time.Duration `mapstructure:"min_duration"`
	DurationJitter time.Duration `mapstructure:"duration_jitter"`
	Drift          float64       `mapstructure:"drift"`
}

// RenderConfig holds frame pacing and color depth
type RenderConfig struct {
	FPS   int    `mapstructure:"fps"`
	Color string `mapstructure:"color"` // auto, truecolor, 256
}

// AudioConfig holds the chime switch
type AudioConfig struct {
	Mute bool `mapstructure:"mute"`
}

// LoggingConfig holds the debug log sink
type LoggingConfig struct {
	Debug bool   `mapstructure:"debug"`
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// SetDefaults sets default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("particles.batch_size", parameter.BatchSize)
	v.SetDefault("particles.stagger", parameter.BatchStagger)
	v.SetDefault("particles.batch_timeout", parameter.BatchTimeout)
	v.SetDefault("particles.min_duration", parameter.FallMinDuration)
	v.SetDefault("particles.duration_jitter", parameter.FallDurationJitter)
	v.SetDefault("particles.drift", parameter.FallDrift)

	v.SetDefault("render.fps", parameter.FPS)
	v.SetDefault("render.color", defaultColor)

	v.SetDefault("audio.mute", false)

	v.SetDefault("logging.debug", false)
	v.SetDefault("logging.file", defaultLogFile)
	v.SetDefault("logging.level", defaultLogLevel)

	v.SetDefault("seed", 0)
	v.SetDefault("season", "")
}

// Load reads configuration into v and returns the validated result
// Environment variables take precedence over the file, flags bound to v take
// precedence over both. Example: SEASONS_PARTICLES_BATCH_SIZE=60
func Load(v *viper.Viper, configPath string) (*Config, error) {
	SetDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Config file not found is OK, defaults and env apply
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from path without overriding variables
// already set. A missing file is not an error
func LoadDotEnv(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	p := c.Particles
	if p.BatchSize < 1 {
		return fmt.Errorf("%w: particles.batch_size must be at least 1", ErrInvalidConfig)
	}
	if p.Stagger < 0 {
		return fmt.Errorf("%w: particles.stagger must not be negative", ErrInvalidConfig)
	}
	if p.BatchTimeout <= 0 {
		return fmt.Errorf("%w: particles.batch_timeout must be positive", ErrInvalidConfig)
	}
	if p.MinDuration <= 0 {
		return fmt.Errorf("%w: particles.min_duration must be positive", ErrInvalidConfig)
	}
	if p.DurationJitter < 0 {
		return fmt.Errorf("%w: particles.duration_jitter must not be negative", ErrInvalidConfig)
	}
	if p.Drift < 0 {
		return fmt.Errorf("%w: particles.drift must not be negative", ErrInvalidConfig)
	}

	if c.Render.FPS < 1 || c.Render.FPS > 240 {
		return fmt.Errorf("%w: render.fps must be between 1 and 240", ErrInvalidConfig)
	}
	if _, ok := terminal.ParseColorMode(c.Render.Color); !ok {
		return fmt.Errorf("%w: render.color must be one of: auto, truecolor, 256", ErrInvalidConfig)
	}

	if _, ok := levels[strings.ToLower(c.Logging.Level)]; !ok {
		return fmt.Errorf("%w: logging.level must be one of: debug, info, warn, error", ErrInvalidConfig)
	}
	if c.Logging.Debug && c.Logging.File == "" {
		return fmt.Errorf("%w: logging.file is required with debug logging", ErrInvalidConfig)
	}

	if c.Season != "" {
		if _, err := season.Parse(c.Season); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if _, err := input.LoadKeyConfig(c.Keys); err != nil {
		return fmt.Errorf("%w: keys: %w", ErrInvalidConfig, err)
	}

	return nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParticleSettings converts the particle section for the spawner
func (c *Config) ParticleSettings() particle.Settings {
	return particle.Settings{
		BatchSize:      c.Particles.BatchSize,
		Stagger:        c.Particles.Stagger,
		Timeout:        c.Particles.BatchTimeout,
		MinDuration:    c.Particles.MinDuration,
		DurationJitter: c.Particles.DurationJitter,
		Drift:          c.Particles.Drift,
	}
}

// TimeoutShort reports whether the batch timeout can fire before the last
// particle of a batch finishes animating
func (c *Config) TimeoutShort() bool {
	s := c.ParticleSettings()
	return s.Timeout < s.WorstCaseLifetime()
}

// FrameInterval returns the frame period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Render.FPS)
}

// ColorMode resolves the configured color depth, auto detects it from the environment
func (c *Config) ColorMode() terminal.ColorMode {
	m, ok := terminal.ParseColorMode(c.Render.Color)
	if !ok {
		return terminal.DetectColorMode()
	}
	return m
}

// InitialSeason returns the season to select at startup, false when none
func (c *Config) InitialSeason() (season.Season, bool) {
	if c.Season == "" {
		return 0, false
	}
	s, err := season.Parse(c.Season)
	return s, err == nil
}

// KeyTable returns the default bindings merged with the keys section
// Viper lowercases map keys, so uppercase runes can only keep their defaults
func (c *Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

// LogLevel returns the slog level, info when unrecognized
func (c *Config) LogLevel() slog.Level {
	if l, ok := levels[strings.ToLower(c.Logging.Level)]; ok {
		return l
	}
	return slog.LevelInfo
}
