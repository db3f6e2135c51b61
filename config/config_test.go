package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/seasons/input"
	"github.com/lixenwraith/seasons/parameter"
	"github.com/lixenwraith/seasons/particle"
	"github.com/lixenwraith/seasons/season"
	"github.com/lixenwraith/seasons/terminal"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, particle.DefaultSettings(), cfg.ParticleSettings())
	assert.Equal(t, parameter.FPS, cfg.Render.FPS)
	assert.Equal(t, "auto", cfg.Render.Color)
	assert.False(t, cfg.Audio.Mute)
	assert.False(t, cfg.Logging.Debug)
	assert.Equal(t, "logs/seasons.log", cfg.Logging.File)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
	assert.Equal(t, parameter.FrameInterval, cfg.FrameInterval())
	assert.False(t, cfg.TimeoutShort())

	_, ok := cfg.InitialSeason()
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "seasons.yaml", `
particles:
  batch_size: 12
  stagger: 100ms
  batch_timeout: 5s
render:
  fps: 30
  color: "256"
season: invierno
`)
	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Particles.BatchSize)
	assert.Equal(t, 100*time.Millisecond, cfg.Particles.Stagger)
	assert.Equal(t, 5*time.Second, cfg.Particles.BatchTimeout)
	assert.Equal(t, 30, cfg.Render.FPS)
	assert.Equal(t, terminal.ColorMode256, cfg.ColorMode())
	assert.True(t, cfg.TimeoutShort())

	s, ok := cfg.InitialSeason()
	assert.True(t, ok)
	assert.Equal(t, season.Winter, s)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "seasons.yaml", "particles:\n  batch_size: 12\n")
	t.Setenv("SEASONS_PARTICLES_BATCH_SIZE", "40")
	t.Setenv("SEASONS_AUDIO_MUTE", "true")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Particles.BatchSize)
	assert.True(t, cfg.Audio.Mute)
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SEASONS_RENDER_FPS", "20")

	v := viper.New()
	v.Set("render.fps", 50)
	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Render.FPS)
}

func TestLoadBadFile(t *testing.T) {
	path := writeFile(t, "seasons.yaml", "particles: [unclosed\n")
	_, err := Load(viper.New(), path)
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SEASONS_SEASON", "monsoon")

	_, err := Load(viper.New(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, season.ErrUnknownSeason)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Particles: ParticlesConfig{
				BatchSize:      30,
				Stagger:        250 * time.Millisecond,
				BatchTimeout:   25 * time.Second,
				MinDuration:    10 * time.Second,
				DurationJitter: 6 * time.Second,
				Drift:          3,
			},
			Render:  RenderConfig{FPS: 60, Color: "truecolor"},
			Logging: LoggingConfig{Level: "info", File: "x.log"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"batch size", func(c *Config) { c.Particles.BatchSize = 0 }},
		{"stagger", func(c *Config) { c.Particles.Stagger = -time.Second }},
		{"timeout", func(c *Config) { c.Particles.BatchTimeout = 0 }},
		{"min duration", func(c *Config) { c.Particles.MinDuration = 0 }},
		{"jitter", func(c *Config) { c.Particles.DurationJitter = -1 }},
		{"drift", func(c *Config) { c.Particles.Drift = -0.5 }},
		{"fps low", func(c *Config) { c.Render.FPS = 0 }},
		{"fps high", func(c *Config) { c.Render.FPS = 1000 }},
		{"color", func(c *Config) { c.Render.Color = "16" }},
		{"level", func(c *Config) { c.Logging.Level = "trace" }},
		{"debug without file", func(c *Config) { c.Logging.Debug = true; c.Logging.File = "" }},
		{"season", func(c *Config) { c.Season = "monsoon" }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLogLevel(t *testing.T) {
	c := Config{Logging: LoggingConfig{Level: "WARN"}}
	assert.Equal(t, slog.LevelWarn, c.LogLevel())
	c.Logging.Level = "bogus"
	assert.Equal(t, slog.LevelInfo, c.LogLevel())
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	path := writeFile(t, ".env", "SEASONS_SEED=7\nSEASONS_SEASON=verano\n")
	t.Setenv("SEASONS_SEASON", "otoño")
	// Unset after the test so the loaded key does not leak
	t.Setenv("SEASONS_SEED", "")
	require.NoError(t, os.Unsetenv("SEASONS_SEED"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "7", os.Getenv("SEASONS_SEED"))
	assert.Equal(t, "otoño", os.Getenv("SEASONS_SEASON"))
}

func TestLoadDotEnvMissing(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}

func TestDump(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	out, err := cfg.Dump()
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "batch_size: 30")
	assert.Contains(t, text, "stagger: 250ms")
	assert.Contains(t, text, "batch_timeout: 25s")
	assert.Contains(t, text, "fps: 60")

	// The dump reads back as a config file
	path := writeFile(t, "dump.yaml", text)
	again, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadKeys(t *testing.T) {
	path := writeFile(t, "seasons.yaml", `
keys:
  x: quit
  q: none
  space: toggle_pause
`)
	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	kt, err := cfg.KeyTable()
	require.NoError(t, err)
	_, ok := kt.Runes['q']
	assert.False(t, ok)
	assert.Equal(t, input.IntentQuit, kt.Runes['x'].Type)
	assert.Equal(t, input.IntentTogglePause, kt.Runes[' '].Type)
	assert.Equal(t, input.IntentSelect, kt.Runes['1'].Type)

	out, err := cfg.Dump()
	require.NoError(t, err)
	assert.Contains(t, string(out), "x: quit")
}

func TestLoadKeysInvalid(t *testing.T) {
	path := writeFile(t, "seasons.yaml", "keys:\n  x: teleport\n")
	_, err := Load(viper.New(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "unknown action")
}
