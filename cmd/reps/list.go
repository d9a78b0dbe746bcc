package main

import (
	"github.com/aretw0/reps/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered reps in priority order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, logger, err := loadOptions(cmd, args)
		if err != nil {
			return err
		}
		return cli.List(opts, cmd.OutOrStdout(), logger)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
