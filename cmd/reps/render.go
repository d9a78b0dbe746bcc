package main

import (
	"github.com/aretw0/reps/internal/cli"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Render values with the first matching rep",
	Long: `Reads JSON or YAML values from the given files (or stdin) and prints one
rendered line per value. JSON input may contain a stream of values and YAML
input may contain several documents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, logger, err := loadOptions(cmd, args)
		if err != nil {
			return err
		}
		return cli.Render(opts, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [files...]",
	Short: "Print the rep and effective type selected for each value",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, logger, err := loadOptions(cmd, args)
		if err != nil {
			return err
		}
		return cli.Resolve(opts, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	},
}

func init() {
	for _, c := range []*cobra.Command{renderCmd, resolveCmd} {
		c.Flags().String("format", "auto", "Input format: auto, json, yaml")
		rootCmd.AddCommand(c)
	}
}
