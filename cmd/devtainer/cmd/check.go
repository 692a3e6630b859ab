package cmd

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/devtainer/devtainer/artifacts"
	"github.com/devtainer/devtainer/internal/check"
	"github.com/devtainer/devtainer/internal/cli"
	"github.com/devtainer/devtainer/internal/engine"
	"github.com/devtainer/devtainer/internal/formatters"
	"github.com/devtainer/devtainer/internal/log"
	"github.com/devtainer/devtainer/internal/viper"
)

func checkCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check [check-name]",
		Short: "Run lint and test checks in the dev container",
		Long:  "This command runs the configured lint and test tools inside the dev container, mounting the current directory as the project source. With no argument every check runs; a single check can be named to run it alone.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  checkRunE,
	}

	viper := viper.Instance()
	flags := checkCmd.Flags()

	flags.String("artifacts", "", "Where check results will be written. (env: DVTR_ARTIFACTS)")
	_ = viper.BindPFlag("artifacts", flags.Lookup("artifacts"))

	return checkCmd
}

func checkRunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logr.FromContextOrDiscard(ctx)

	cfg, resolved, err := loadConfigs(cmd)
	if err != nil {
		return err
	}

	checks := check.DefaultChecks()
	if len(args) == 1 && args[0] != "all" {
		selected, err := check.ByName(args[0])
		if err != nil {
			return err
		}
		checks = []check.Check{selected}
	}

	formatter, err := formatters.NewForConfig(cfg.ReadOnly())
	if err != nil {
		return err
	}

	artifactsWriter, err := artifacts.NewFilesystemWriter(artifacts.WithDirectory(cfg.Artifacts))
	if err != nil {
		return err
	}
	ctx = artifacts.ContextWithWriter(ctx, artifactsWriter)

	opts := containerRunOptions(cfg, resolved)

	checkEngine := engine.CheckEngine{
		Runner:     newContainerEngine(),
		RunOptions: opts,
		Checks:     checks,
	}

	logger.V(log.DBG).Info("executing checks", "image", resolved.Image, "count", len(checks))

	results, err := cli.RunChecks(ctx, &checkEngine, formatter, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Results have been written to %s\n", artifactsWriter.Path())

	if !results.PassedOverall() {
		return ErrChecksFailed
	}

	return nil
}
