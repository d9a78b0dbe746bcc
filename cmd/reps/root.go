package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/reps/internal/cli"
	"github.com/aretw0/reps/internal/config"
	"github.com/aretw0/reps/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reps",
	Short: "reps picks a renderer for runtime values and remote object grips",
	Long: `reps classifies values (plain JSON/YAML values or grips describing remote
objects) and renders each with the first matching rep of an ordered registry.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	addConfigFlags(rootCmd)
}

// addConfigFlags registers the flags that override reps.yaml.
func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("config", config.DefaultPath, "Path to the reps configuration file (YAML or JSON)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("color", "", "Colour output: auto, always, never")
	flags.String("mode", "", "Rendering mode: tiny, short, long")
	flags.Bool("no-grip", false, "Disable shape-hint classification and grip-only reps")
	flags.String("default", "", "Rep used when no registered rep accepts a value")
	flags.Int("max-length", 0, "Crop rendered strings to this many characters (0 keeps the config value)")
	flags.StringSlice("disable", nil, "Reps to remove from the registry")
}

// loadOptions reads the config file and applies the flags the user set.
func loadOptions(cmd *cobra.Command, args []string) (cli.Options, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cli.Options{}, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("mode") {
		cfg.Mode, _ = flags.GetString("mode")
	}
	if flags.Changed("no-grip") {
		cfg.NoGrip, _ = flags.GetBool("no-grip")
	}
	if flags.Changed("default") {
		cfg.DefaultRep, _ = flags.GetString("default")
	}
	if flags.Changed("max-length") {
		cfg.MaxLength, _ = flags.GetInt("max-length")
	}
	if flags.Changed("disable") {
		cfg.Disable, _ = flags.GetStringSlice("disable")
	}
	if err := cfg.Validate(); err != nil {
		return cli.Options{}, nil, err
	}

	opts := cli.Options{Config: cfg, Paths: args}
	if f := flags.Lookup("format"); f != nil {
		opts.Format = f.Value.String()
	}
	return opts, logging.New(logging.ParseLevel(cfg.LogLevel)), nil
}
