package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devtainer/devtainer/internal/check"
)

func listChecksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-checks",
		Short: "List all the checks the harness runs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), formatChecks(check.DefaultChecks()))
		},
	}
}

func formatChecks(checks []check.Check) string {
	var sb strings.Builder
	sb.WriteString("checks run against the dev container:\n")
	for _, c := range checks {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", c.Name(), c.Description()))
	}
	return sb.String()
}
