package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/seasons/input"
	"github.com/lixenwraith/seasons/season"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the seasons with their glyphs and colors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		for i, s := range season.All() {
			cfg := season.Lookup(s)
			fmt.Fprintf(out, "%d  %-7s %-10s %s\n", i+1, s, cfg.Name, cfg.Label)
			fmt.Fprintf(out, "   glyphs  %s\n", strings.Join(cfg.Glyphs, " "))
			fmt.Fprintf(out, "   colors  %s  primary %s  secondary %s  accent %s\n",
				cfg.Colors.Gradient(), cfg.Colors.Primary, cfg.Colors.Secondary, cfg.Colors.Accent)
		}
		return nil
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the effective key bindings and the bindable actions",
	Long: `List the key bindings after the keys section of the config is applied.

Override bindings in the config file, "none" removes a default:

  keys:
    x: quit
    q: none`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		kt, err := cfg.KeyTable()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, b := range kt.Bindings() {
			fmt.Fprintf(out, "%-10s %s\n", b.Key, b.Action)
		}
		fmt.Fprintf(out, "\nactions: %s\n", strings.Join(input.ActionNames(), ", "))
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the effective configuration in YAML format after defaults, the
config file, .env, SEASONS_* environment variables and flags are applied.

Redirect it to create a config file:

  seasons config dump > .seasons.yaml

Environment variables use the SEASONS_ prefix and underscores for nesting.
Example: particles.batch_size -> SEASONS_PARTICLES_BATCH_SIZE`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := cfg.Dump()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configDumpCmd)
}
