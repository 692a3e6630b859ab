package docker

import "io"

// BuildOptions controls a single image build.
type BuildOptions struct {
	// Tag is the fully qualified reference the built image is tagged with.
	Tag string
	// Dockerfile is the path to the Dockerfile. Empty means the runtime default.
	Dockerfile string
	// Pull warms the build cache by pulling Tag first. Pull failures are
	// not fatal; the tag may simply not exist yet.
	Pull bool
	// NoCache disables the build cache entirely.
	NoCache bool
}

// RunOptions controls a single container invocation.
type RunOptions struct {
	Image string
	// Name names the container. Empty lets the runtime pick one.
	Name string
	// Workdir is the working directory inside the container.
	Workdir string
	// TTY requests an interactive terminal (-it) when the container is
	// run attached. Captured runs keep only stdin open (-i); a
	// terminal and captured output do not mix.
	TTY bool
	// MountSource is a host path bind-mounted at Workdir. Empty
	// disables the mount.
	MountSource string
	// User is a uid:gid pair passed via --user. Empty omits the flag.
	User string
	// Cmd is the command and arguments executed in the container.
	Cmd []string

	// Stdin, Stdout, and Stderr override the streams an attached run
	// wires to the container. Nil selects the invoking process's own
	// streams. Captured runs ignore them.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}
