package cmd

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/devtainer/devtainer/internal/docker"
	"github.com/devtainer/devtainer/internal/log"
	"github.com/devtainer/devtainer/internal/viper"
)

func buildCmd() *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build the dev container image",
		Long:  "This command builds the project's dev container image from its Dockerfile, tagged with the image reference derived from the git remote and branch.",
		Args:  cobra.NoArgs,
		RunE:  buildRunE,
	}

	viper := viper.Instance()
	flags := buildCmd.Flags()

	flags.StringP("dockerfile", "f", "", "The Dockerfile the image is built from. (env: DVTR_DOCKERFILE)")
	_ = viper.BindPFlag("dockerfile", flags.Lookup("dockerfile"))

	flags.Bool("pull", false, "Pull the previously published image first to warm the build cache. (env: DVTR_PULL)")
	_ = viper.BindPFlag("pull", flags.Lookup("pull"))

	flags.Bool("no-cache", false, "Build the image without using the layer cache. (env: DVTR_NOCACHE)")
	_ = viper.BindPFlag("nocache", flags.Lookup("no-cache"))

	return buildCmd
}

func buildRunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logr.FromContextOrDiscard(ctx)

	cfg, resolved, err := loadConfigs(cmd)
	if err != nil {
		return err
	}

	logger.V(log.DBG).Info("building image", "image", resolved.Image, "dockerfile", cfg.Dockerfile)

	engine := newContainerEngine()
	if err := engine.Build(ctx, docker.BuildOptions{
		Tag:        resolved.Image,
		Dockerfile: cfg.Dockerfile,
		Pull:       cfg.Pull,
		NoCache:    cfg.NoCache,
	}); err != nil {
		return fmt.Errorf("image build failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), resolved.Image)
	return nil
}
