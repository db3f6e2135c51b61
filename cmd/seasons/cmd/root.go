// Package cmd implements the CLI commands for seasons
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/seasons/app"
	"github.com/lixenwraith/seasons/audio"
	"github.com/lixenwraith/seasons/config"
	"github.com/lixenwraith/seasons/engine"
	"github.com/lixenwraith/seasons/terminal"
)

// cfgFile holds the config file path from CLI flag
var cfgFile string

// dotEnvFile is loaded before the config, existing variables win
const dotEnvFile = ".env"

var rootCmd = &cobra.Command{
	Use:   "seasons",
	Short: "Pick a season and watch it fall",
	Long: `seasons is a full-screen terminal toy. Pick one of four seasons and a
shower of its emoji drifts down the screen over a gradient in its colors.

Keys: 1-4 select, arrows or hjkl move, Enter or Space select the focused
tile, mouse click selects, m mutes, ? hides the hint bar, r redraws, q quits.`,
	SilenceUsage: true,
	RunE:         runPicker,
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("executing root command: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.seasons.yaml or $HOME/.seasons.yaml)")

	flags := rootCmd.PersistentFlags()
	flags.Int("batch-size", 0, "particles per selection")
	flags.Duration("stagger", 0, "delay between particles of a batch")
	flags.Duration("batch-timeout", 0, "safety timeout removing a batch")
	flags.Int("fps", 0, "frames per second")
	flags.String("color", "", "color mode: auto, truecolor, 256")
	flags.Bool("mute", false, "disable the selection chime")
	flags.Int64("seed", 0, "particle RNG seed, 0 uses the clock")
	flags.String("season", "", "season selected at startup")
	flags.Bool("debug", false, "write logs to the log file")
	flags.String("log-file", "", "log file path used with --debug")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	// Bound flags only override when set, viper defaults fill the rest
	mustBindPFlag("particles.batch_size", flags.Lookup("batch-size"))
	mustBindPFlag("particles.stagger", flags.Lookup("stagger"))
	mustBindPFlag("particles.batch_timeout", flags.Lookup("batch-timeout"))
	mustBindPFlag("render.fps", flags.Lookup("fps"))
	mustBindPFlag("render.color", flags.Lookup("color"))
	mustBindPFlag("audio.mute", flags.Lookup("mute"))
	mustBindPFlag("seed", flags.Lookup("seed"))
	mustBindPFlag("season", flags.Lookup("season"))
	mustBindPFlag("logging.debug", flags.Lookup("debug"))
	mustBindPFlag("logging.file", flags.Lookup("log-file"))
	mustBindPFlag("logging.level", flags.Lookup("log-level"))
}

// loadConfig loads .env then the layered configuration
func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}
	return config.Load(viper.GetViper(), cfgFile)
}

func runPicker(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	logger.Info("starting",
		"config_file", viper.ConfigFileUsed(),
		"batch_size", cfg.Particles.BatchSize,
		"batch_timeout", cfg.Particles.BatchTimeout.String(),
		"fps", cfg.Render.FPS,
		"color", cfg.Render.Color,
		"mute", cfg.Audio.Mute,
		"seed", cfg.Seed,
	)
	if cfg.TimeoutShort() {
		logger.Warn("batch timeout is shorter than the particle lifetime, late particles will be cut",
			"timeout", cfg.Particles.BatchTimeout.String(),
			"lifetime", cfg.ParticleSettings().WorstCaseLifetime().String(),
		)
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		return fmt.Errorf("keys: %w", err)
	}

	chimer := newChimer(cfg, logger)
	if c, ok := chimer.(*audio.BeepChimer); ok {
		defer c.Cleanup()
	}

	term, err := terminal.New(cfg.ColorMode())
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer term.Fini()
	// Panic recovery: reset the terminal even if the loop crashes
	defer app.Recover()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := app.Options{
		Clock:         engine.NewTimeProvider(),
		Settings:      cfg.ParticleSettings(),
		Rand:          rand.New(rand.NewSource(seed)),
		Logger:        logger,
		Chimer:        chimer,
		FrameInterval: cfg.FrameInterval(),
		KeyTable:      keys,
	}
	if s, ok := cfg.InitialSeason(); ok {
		opts.InitialSeason = &s
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.New(term, opts).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newChimer returns the speaker chimer, started muted under --mute so m can
// turn it back on, or a silent one when the audio device cannot be opened
func newChimer(cfg *config.Config, logger *slog.Logger) engine.Chimer {
	c := audio.NewBeepChimer(logger)
	c.SetMuted(cfg.Audio.Mute)
	return openedOrSilent(c, c.Initialize(), logger)
}

// openedOrSilent falls back to a silent chimer when opening the device failed
func openedOrSilent(c *audio.BeepChimer, err error, logger *slog.Logger) engine.Chimer {
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return audio.Silent{}
	}
	return c
}

// mustBindPFlag binds a viper key to a cobra flag and panics if binding fails
func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("failed to bind flag %q to key %q: %v", flag.Name, key, err))
	}
}
