package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/reps"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of reps",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("reps version %s\n", strings.TrimSpace(reps.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
