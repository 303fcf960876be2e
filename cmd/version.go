package cmd

import (
	"fmt"

	"github.com/ecoechos/backend/pkg/router"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), router.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
