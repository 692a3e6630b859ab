// Package config defines the read-only configuration surface consumed
// by the harness's libraries.
package config

// Config is the read-only view of the resolved harness configuration.
type Config interface {
	Remote() string
	Registry() string
	Tag() string
	LogFile() string
	Artifacts() string
	ResponseFormat() string
	Dockerfile() string
	ContainerName() string
	NoTTY() bool
	UseVolume() bool
	UseUser() bool
	Pull() bool
	NoCache() bool
	DockerConfig() string
}
