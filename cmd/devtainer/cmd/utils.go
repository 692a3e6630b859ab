package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devtainer/devtainer/internal/docker"
	"github.com/devtainer/devtainer/internal/formatters"
	"github.com/devtainer/devtainer/internal/git"
	"github.com/devtainer/devtainer/internal/lib"
	"github.com/devtainer/devtainer/internal/runtime"
	"github.com/devtainer/devtainer/internal/viper"
)

// formatList renders the supported output formats for flag usage text.
func formatList() string {
	return strings.Join(formatters.SupportedFormats(), ", ")
}

// loadConfigs renders the viper configuration as a runtime.Config and
// derives the resolved image configuration from it, consulting the
// local git CLI for whatever the configuration does not override.
func loadConfigs(cmd *cobra.Command) (*runtime.Config, *lib.ResolvedConfig, error) {
	cfg, err := runtime.NewConfigFrom(*viper.Instance())
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	resolved, err := lib.ResolveImageConfig(cmd.Context(), git.New(exec.Command), cfg.ReadOnly())
	if err != nil {
		return nil, nil, err
	}

	return cfg, resolved, nil
}

// containerEngine covers the docker operations the commands invoke.
type containerEngine interface {
	Version(ctx context.Context) (string, error)
	Build(ctx context.Context, opts docker.BuildOptions) error
	Run(ctx context.Context, opts docker.RunOptions) (string, error)
	RunAttached(ctx context.Context, opts docker.RunOptions) error
	Stop(ctx context.Context, name string) error
	Push(ctx context.Context, image string) error
}

// newContainerEngine is the engine constructor used by commands.
// Variable so command tests can substitute a fake engine.
var newContainerEngine = func() containerEngine {
	return docker.New(exec.Command)
}

// containerRunOptions translates the configuration into the run
// options shared by the run and check commands.
func containerRunOptions(cfg *runtime.Config, resolved *lib.ResolvedConfig) docker.RunOptions {
	opts := docker.RunOptions{
		Image:   resolved.Image,
		Workdir: resolved.SourcePath,
		TTY:     !cfg.NoTTY,
	}

	if cfg.UseVolume {
		if cwd, err := os.Getwd(); err == nil {
			opts.MountSource = cwd
		}
	}

	if cfg.UseUser {
		opts.User = fmt.Sprintf("%d:%d", os.Getuid(), os.Getgid())
	}

	return opts
}
