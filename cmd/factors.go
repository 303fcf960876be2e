package cmd

import (
	"fmt"

	"github.com/ecoechos/backend/pkg/cli"
	"github.com/ecoechos/backend/pkg/emission"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var flagGroup string

var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "Show the emission factor table",
	Args:  cobra.NoArgs,
	RunE:  runFactors,
}

func init() {
	factorsCmd.Flags().StringVarP(&flagGroup, "group", "g", "", "Only show factors of this group")
	rootCmd.AddCommand(factorsCmd)
}

func runFactors(cmd *cobra.Command, _ []string) error {
	factors := emission.All()
	if flagGroup != "" {
		group := emission.Group(flagGroup)
		if !slices.Contains(emission.Groups(), group) {
			return fmt.Errorf("unknown group '%s', must be one of %v", flagGroup, emission.Groups())
		}
		factors = emission.ByGroup(group)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), cli.RenderFactors(factors))
	return nil
}
