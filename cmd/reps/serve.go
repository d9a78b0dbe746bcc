package main

import (
	"os"

	"github.com/aretw0/reps/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP rendering API",
	Long:  `Serves POST /render, POST /resolve, GET /reps, GET /health and GET /metrics.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, logger, err := loadOptions(cmd, args)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			opts.Config.Serve.Addr, _ = cmd.Flags().GetString("addr")
		}
		return cli.Serve(opts, os.Stderr, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
}
