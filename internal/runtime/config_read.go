package runtime

import (
	"github.com/devtainer/devtainer/internal/config"
)

// ensure ReadOnlyConfig always implements config.Config
var _ config.Config = &ReadOnlyConfig{}

// ReadOnlyConfig is a Config that cannot be modified. It implements
// config.Config.
type ReadOnlyConfig struct {
	cfg Config
}

func (ro *ReadOnlyConfig) Remote() string {
	return ro.cfg.Remote
}

func (ro *ReadOnlyConfig) Registry() string {
	return ro.cfg.Registry
}

func (ro *ReadOnlyConfig) Tag() string {
	return ro.cfg.Tag
}

func (ro *ReadOnlyConfig) LogFile() string {
	return ro.cfg.LogFile
}

func (ro *ReadOnlyConfig) Artifacts() string {
	return ro.cfg.Artifacts
}

func (ro *ReadOnlyConfig) ResponseFormat() string {
	return ro.cfg.ResponseFormat
}

func (ro *ReadOnlyConfig) Dockerfile() string {
	return ro.cfg.Dockerfile
}

func (ro *ReadOnlyConfig) ContainerName() string {
	return ro.cfg.ContainerName
}

func (ro *ReadOnlyConfig) NoTTY() bool {
	return ro.cfg.NoTTY
}

func (ro *ReadOnlyConfig) UseVolume() bool {
	return ro.cfg.UseVolume
}

func (ro *ReadOnlyConfig) UseUser() bool {
	return ro.cfg.UseUser
}

func (ro *ReadOnlyConfig) Pull() bool {
	return ro.cfg.Pull
}

func (ro *ReadOnlyConfig) NoCache() bool {
	return ro.cfg.NoCache
}

func (ro *ReadOnlyConfig) DockerConfig() string {
	return ro.cfg.DockerConfig
}
