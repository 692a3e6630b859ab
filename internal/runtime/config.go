// Package runtime holds the mutable configuration assembled from
// flags, environment, and the optional config file.
package runtime

import (
	"github.com/spf13/viper"
)

// Config contains configuration details for running the harness.
type Config struct {
	Remote         string
	Registry       string
	Tag            string
	LogFile        string
	Artifacts      string
	ResponseFormat string
	// Container-Specific Fields
	Dockerfile    string
	ContainerName string
	NoTTY         bool
	UseVolume     bool
	UseUser       bool
	Pull          bool
	NoCache       bool
	DockerConfig  string
}

// ReadOnly returns an uneditable configuration.
func (c *Config) ReadOnly() *ReadOnlyConfig {
	return &ReadOnlyConfig{
		cfg: *c,
	}
}

// NewConfigFrom will return a runtime.Config based on the stored inputs in
// the provided viper.Viper. Defaults should be set before this function
// is called.
func NewConfigFrom(vcfg viper.Viper) (*Config, error) {
	cfg := Config{}
	cfg.Remote = vcfg.GetString("remote")
	cfg.Registry = vcfg.GetString("registry")
	cfg.Tag = vcfg.GetString("tag")
	cfg.LogFile = vcfg.GetString("logfile")
	cfg.Artifacts = vcfg.GetString("artifacts")
	cfg.ResponseFormat = vcfg.GetString("format")
	cfg.storeContainerConfiguration(vcfg)
	return &cfg, nil
}

// storeContainerConfiguration reads container-specific config items in
// viper, normalizes them, and stores them in Config.
func (c *Config) storeContainerConfiguration(vcfg viper.Viper) {
	c.Dockerfile = vcfg.GetString("dockerfile")
	c.ContainerName = vcfg.GetString("container_name")
	c.NoTTY = vcfg.GetBool("notty")
	c.UseVolume = vcfg.GetBool("usevolume")
	c.UseUser = vcfg.GetBool("useuser")
	c.Pull = vcfg.GetBool("pull")
	c.NoCache = vcfg.GetBool("nocache")
	c.DockerConfig = vcfg.GetString("dockerConfig")
}
