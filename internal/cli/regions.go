package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"benefitcheck/internal/eligibility"
)

func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the states covered by the extra benefit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, region := range eligibility.CoverageRegions() {
				fmt.Fprintln(cmd.OutOrStdout(), region)
			}
		},
	}
}
