package cmd

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/devtainer/devtainer/internal/log"
	"github.com/devtainer/devtainer/internal/viper"
)

func runCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [command...]",
		Short: "Run a command in the dev container",
		Long:  "This command starts the dev container with the project source mounted at its source path and runs the given command in it. With no command, an interactive shell is started.",
		RunE:  runRunE,
	}

	viper := viper.Instance()
	flags := runCmd.Flags()

	flags.String("container-name", "", "Name given to the started container. Defaults to the repository name. (env: DVTR_CONTAINER_NAME)")
	_ = viper.BindPFlag("container_name", flags.Lookup("container-name"))

	flags.Bool("notty", false, "Do not allocate a pseudo-terminal for the container. (env: DVTR_NOTTY)")
	_ = viper.BindPFlag("notty", flags.Lookup("notty"))

	flags.Bool("use-volume", false, "Mount the current directory into the container source path. (env: DVTR_USEVOLUME)")
	_ = viper.BindPFlag("usevolume", flags.Lookup("use-volume"))

	flags.Bool("use-user", false, "Run the container as the invoking uid:gid. (env: DVTR_USEUSER)")
	_ = viper.BindPFlag("useuser", flags.Lookup("use-user"))

	return runCmd
}

func runRunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logr.FromContextOrDiscard(ctx)

	cfg, resolved, err := loadConfigs(cmd)
	if err != nil {
		return err
	}

	opts := containerRunOptions(cfg, resolved)
	opts.Name = resolved.ContainerName
	opts.Cmd = args
	if len(opts.Cmd) == 0 {
		opts.Cmd = []string{"bash"}
	}

	logger.V(log.DBG).Info("running container", "image", opts.Image, "name", opts.Name, "cmd", opts.Cmd)

	// Attach the container to our own streams so a shell is usable and
	// output appears as the command produces it.
	opts.Stdout = cmd.OutOrStdout()
	opts.Stderr = cmd.ErrOrStderr()
	opts.Stdin = cmd.InOrStdin()

	return newContainerEngine().RunAttached(ctx, opts)
}
