package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved harness configuration",
		Long:  "This command prints the configuration the harness derives from the git remote and branch: the account, repository, image reference, and container source path.",
		Args:  cobra.NoArgs,
		RunE:  configRunE,
	}
}

func configRunE(cmd *cobra.Command, args []string) error {
	cfg, resolved, err := loadConfigs(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if cfg.ResponseFormat == "json" {
		encoded, err := json.MarshalIndent(resolved, "", "    ")
		if err != nil {
			return fmt.Errorf("could not encode configuration: %w", err)
		}
		fmt.Fprintln(out, string(encoded))
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}

	fmt.Fprintf(out, "Current Directory:  %s\n", cwd)
	fmt.Fprintf(out, "Remote URL:         %s\n", resolved.RemoteURL)
	fmt.Fprintf(out, "Account:            %s\n", resolved.Account)
	fmt.Fprintf(out, "Repository Name:    %s\n", resolved.Repository)
	fmt.Fprintf(out, "Git Branch:         %s\n", resolved.Branch)
	fmt.Fprintf(out, "Docker Image:       %s\n", resolved.Image)
	fmt.Fprintf(out, "Docker Source Path: %s\n", resolved.SourcePath)
	fmt.Fprintf(out, "Container Name:     %s\n", resolved.ContainerName)

	return nil
}
