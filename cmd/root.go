// Package cmd contains the command line interface.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ecoechos",
	Short: "Household carbon footprint estimator",
	Long:  "EcoEchos estimates household carbon footprints, tracks them per day and ranks users by their monthly totals.\nWithout a subcommand, the API server is started.",
	RunE:  runServe,

	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
