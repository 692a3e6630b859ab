package cmd

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/google/go-github/v57/github"
	"github.com/spf13/cobra"

	"github.com/devtainer/devtainer/version"
)

func versionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of devtainer",
		Args:  cobra.NoArgs,
		RunE:  versionRunE,
	}

	versionCmd.Flags().Bool("check-latest", false, "Check GitHub for the latest released version.")

	return versionCmd
}

func versionRunE(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "devtainer %s\n", version.Version.String())

	checkLatest, _ := cmd.Flags().GetBool("check-latest")
	if !checkLatest {
		return nil
	}

	logger := logr.FromContextOrDiscard(cmd.Context())

	latest, err := version.Version.LatestReleasedVersion(cmd, github.NewClient(nil).Repositories)
	if err != nil {
		logger.Error(err, "could not determine the latest released version")
		return nil
	}
	if latest != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "a newer release is available: %s\n", latest.GetTagName())
	}

	return nil
}
