package cmd

var (
	DefaultLogFile      = "devtainer.log"
	DefaultLogLevel     = "warn"
	DefaultOutputFormat = "text"
	DefaultRegistry     = "ghcr.io"
	DefaultDockerfile   = "Dockerfile"
)
