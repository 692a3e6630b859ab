package cmd

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/devtainer/devtainer/internal/log"
)

func stopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop and remove the dev container",
		Args:  cobra.NoArgs,
		RunE:  stopRunE,
	}
}

func stopRunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logr.FromContextOrDiscard(ctx)

	_, resolved, err := loadConfigs(cmd)
	if err != nil {
		return err
	}

	logger.V(log.DBG).Info("stopping container", "name", resolved.ContainerName)

	return newContainerEngine().Stop(ctx, resolved.ContainerName)
}
