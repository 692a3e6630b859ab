package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devtainer/devtainer/internal/git"
	"github.com/devtainer/devtainer/internal/viper"
)

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <remote-url>",
		Short: "Resolve a git remote URL to its account name",
		Long:  "This command parses a git remote URL in either its SSH or HTTPS form and prints the lowercase account name it belongs to. Without an argument the configured remote is resolved instead.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  resolveRunE,
	}
}

func resolveRunE(cmd *cobra.Command, args []string) error {
	url := viper.Instance().GetString("remote")
	if len(args) == 1 {
		url = args[0]
	}
	if url == "" {
		return ErrNoRemoteURL
	}

	desc, err := git.ParseRemote(url)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), desc.Account)
	return nil
}
