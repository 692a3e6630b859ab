package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func checkDockerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-docker",
		Short: "Verify a usable docker binary is on the PATH",
		Long:  "This command asks the docker binary for its version and prints it, failing when docker is missing or unusable. The other commands assume docker works; this one proves it.",
		Args:  cobra.NoArgs,
		RunE:  checkDockerRunE,
	}
}

func checkDockerRunE(cmd *cobra.Command, args []string) error {
	version, err := newContainerEngine().Version(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}
