// Package cmd implements the command-line interface for devtainer.
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/devtainer/devtainer/artifacts"
	"github.com/devtainer/devtainer/internal/log"
	"github.com/devtainer/devtainer/internal/viper"
	"github.com/devtainer/devtainer/version"

	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	spfviper "github.com/spf13/viper"
)

var configFileUsed bool

func init() {
	cobra.OnInitialize(func() { initConfig(viper.Instance()) })
}

func rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:              "devtainer",
		Short:            "Dev container test harness.",
		Long:             "A utility that builds and runs a project's dev container and delegates lint and test tooling into it, deriving the image reference from the project's git remote.",
		Version:          version.Version.String(),
		Args:             cobra.MinimumNArgs(1),
		PersistentPreRun: preRunConfig,
	}

	viper := viper.Instance()
	rootCmd.PersistentFlags().String("logfile", "", "Where the execution logfile will be written. (env: DVTR_LOGFILE)")
	_ = viper.BindPFlag("logfile", rootCmd.PersistentFlags().Lookup("logfile"))

	rootCmd.PersistentFlags().String("loglevel", "", "The verbosity of the devtainer tool itself. Ex. warn, debug, trace, info, error. (env: DVTR_LOGLEVEL)")
	_ = viper.BindPFlag("loglevel", rootCmd.PersistentFlags().Lookup("loglevel"))

	rootCmd.PersistentFlags().String("remote", "", "Remote URL to resolve instead of asking git for the origin remote. (env: DVTR_REMOTE)")
	_ = viper.BindPFlag("remote", rootCmd.PersistentFlags().Lookup("remote"))

	rootCmd.PersistentFlags().String("registry", "", "Container registry host used in the composed image reference. (env: DVTR_REGISTRY)")
	_ = viper.BindPFlag("registry", rootCmd.PersistentFlags().Lookup("registry"))

	rootCmd.PersistentFlags().StringP("tag", "t", "", "Image tag override. Defaults to the current git branch. (env: DVTR_TAG)")
	_ = viper.BindPFlag("tag", rootCmd.PersistentFlags().Lookup("tag"))

	rootCmd.PersistentFlags().StringP("format", "o", "", "The format for the command output. One of: "+formatList()+". (env: DVTR_FORMAT)")
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))

	rootCmd.AddCommand(buildCmd())
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(stopCmd())
	rootCmd.AddCommand(pushCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(checkDockerCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(listChecksCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func Execute() error {
	return rootCmd().ExecuteContext(context.Background())
}

func initConfig(viper *spfviper.Viper) {
	// set up ENV var support
	viper.SetEnvPrefix("dvtr")
	viper.AutomaticEnv()

	// set up optional config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	configFileUsed = true
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(spfviper.ConfigFileNotFoundError); ok {
			configFileUsed = false
		}
	}

	// Set up logging config defaults
	viper.SetDefault("logfile", DefaultLogFile)
	viper.SetDefault("loglevel", DefaultLogLevel)
	viper.SetDefault("artifacts", artifacts.DefaultArtifactsDir)

	// Set up image reference defaults
	viper.SetDefault("registry", DefaultRegistry)
	viper.SetDefault("format", DefaultOutputFormat)

	// Set up container defaults
	viper.SetDefault("dockerfile", DefaultDockerfile)
	viper.SetDefault("usevolume", true)
	viper.SetDefault("useuser", true)
	viper.SetDefault("pull", true)
}

// preRunConfig is used by cobra.PreRun in all non-root commands to load all necessary configurations
func preRunConfig(cmd *cobra.Command, args []string) {
	viper := viper.Instance()
	l := log.L()
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true})

	// set up logging
	logname := viper.GetString("logfile")
	logFile, err := os.OpenFile(logname, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err == nil {
		mw := io.MultiWriter(os.Stderr, logFile)
		l.SetOutput(mw)
	} else {
		l.Infof("Failed to log to file, using default stderr")
	}
	if ll, err := logrus.ParseLevel(viper.GetString("loglevel")); err == nil {
		l.SetLevel(ll)
	}

	if !configFileUsed {
		l.Debug("config file not found, proceeding without it")
	}

	logger := logrusr.New(l)
	ctx := logr.NewContext(cmd.Context(), logger)
	cmd.SetContext(ctx)
}
