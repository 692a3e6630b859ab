package cmd

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/devtainer/devtainer/internal/authn"
	"github.com/devtainer/devtainer/internal/log"
	"github.com/devtainer/devtainer/internal/viper"
)

func pushCmd() *cobra.Command {
	pushCmd := &cobra.Command{
		Use:   "push",
		Short: "Push the dev container image to the registry",
		Long:  "This command pushes the previously built dev container image to the configured registry.",
		Args:  cobra.NoArgs,
		RunE:  pushRunE,
	}

	viper := viper.Instance()
	flags := pushCmd.Flags()

	flags.StringP("docker-config", "d", "", "Path to the Docker config.json containing registry credentials. (env: DVTR_DOCKERCONFIG)")
	_ = viper.BindPFlag("dockerConfig", flags.Lookup("docker-config"))

	return pushCmd
}

func pushRunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logr.FromContextOrDiscard(ctx)

	cfg, resolved, err := loadConfigs(cmd)
	if err != nil {
		return err
	}

	// The docker CLI handles authentication itself; the keychain probe
	// only gives an early warning before a long push.
	have, err := authn.HaveCredentialsFor(ctx, cfg.DockerConfig, cfg.Registry)
	if err != nil {
		logger.V(log.DBG).Info("could not inspect registry credentials", "error", err.Error())
	} else if !have {
		logger.Info("no credentials found for registry; the push may be rejected", "registry", cfg.Registry)
	}

	logger.V(log.DBG).Info("pushing image", "image", resolved.Image)

	if err := newContainerEngine().Push(ctx, resolved.Image); err != nil {
		return fmt.Errorf("image push failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), resolved.Image)
	return nil
}
