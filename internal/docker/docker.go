// Package docker shells out to the docker CLI for the image and
// container lifecycle operations the harness needs. The docker
// binary itself is an external collaborator; this package only
// composes argument lists and interprets exit codes.
package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/go-logr/logr"

	"github.com/devtainer/devtainer/internal/log"
)

// New returns a docker engine backed by cmdContext.
func New(cmdContext execContext) *dockerEngine {
	engine := dockerEngine{cmdContext: cmdContext}
	return &engine
}

type dockerEngine struct {
	cmdContext execContext
}

// Define a type that is the signature of the exec.Command function.
// This allows us to override that function with our own for
// testing purposes. This type is only used directly in the New() function.
type execContext = func(name string, arg ...string) *exec.Cmd

// Version confirms a usable docker binary and reports its version string.
func (d dockerEngine) Version(ctx context.Context) (string, error) {
	out, err := d.run(ctx, "--version")
	if err != nil {
		return "", fmt.Errorf("could not determine the docker version: %v", err)
	}

	return strings.TrimSpace(out), nil
}

// Pull pulls image from its registry.
func (d dockerEngine) Pull(ctx context.Context, image string) error {
	if _, err := d.run(ctx, "pull", image); err != nil {
		return fmt.Errorf("could not pull image %s: %v", image, err)
	}

	return nil
}

// Build builds an image per opts from the current directory.
func (d dockerEngine) Build(ctx context.Context, opts BuildOptions) error {
	logger := logr.FromContextOrDiscard(ctx)

	if opts.Pull {
		// Warming the cache with the previous image is best effort.
		if err := d.Pull(ctx, opts.Tag); err != nil {
			logger.V(log.DBG).Info("cache warming pull failed, continuing", "image", opts.Tag)
		}
	}

	cmdArgs := []string{"build", "-t", opts.Tag}
	if opts.Dockerfile != "" {
		cmdArgs = append(cmdArgs, "-f", opts.Dockerfile)
	}
	if opts.NoCache {
		cmdArgs = append(cmdArgs, "--no-cache")
	}
	cmdArgs = append(cmdArgs, ".")

	if _, err := d.run(ctx, cmdArgs...); err != nil {
		return fmt.Errorf("could not build image %s: %v", opts.Tag, err)
	}

	return nil
}

// Push pushes image to its registry.
func (d dockerEngine) Push(ctx context.Context, image string) error {
	if _, err := d.run(ctx, "push", image); err != nil {
		return fmt.Errorf("could not push image %s: %v", image, err)
	}

	return nil
}

// Run executes opts.Cmd inside a disposable container and returns the
// captured stdout. A terminal is never allocated on this path; captured
// output and -t do not mix. A non-zero exit from the contained command
// yields an *exec.ExitError wrapped in the returned error, so callers
// can tell a failed command apart from an invocation problem.
func (d dockerEngine) Run(ctx context.Context, opts RunOptions) (string, error) {
	return d.run(ctx, runArgs(opts, false)...)
}

// RunAttached executes opts.Cmd with the invoking process's standard
// streams attached, so output appears as the contained command produces
// it and stdin reaches it. opts.TTY chooses between -it and -i. This is
// the path interactive shells take; captured runs go through Run.
func (d dockerEngine) RunAttached(ctx context.Context, opts RunOptions) error {
	logger := logr.FromContextOrDiscard(ctx)

	cmd := d.cmdContext("docker", runArgs(opts, opts.TTY)...)
	logger.V(log.DBG).Info("running docker with the following invocation", "args", cmd.Args)

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if opts.Stdin != nil {
		cmd.Stdin = opts.Stdin
	}
	if opts.Stdout != nil {
		cmd.Stdout = opts.Stdout
	}
	if opts.Stderr != nil {
		cmd.Stderr = opts.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("container command failed: %w", err)
	}

	return nil
}

// runArgs assembles the docker run argument list for opts. tty
// requests a pseudo-terminal; without it only stdin is kept open.
func runArgs(opts RunOptions, tty bool) []string {
	cmdArgs := []string{"run", "--rm"}
	if tty {
		cmdArgs = append(cmdArgs, "-it")
	} else {
		cmdArgs = append(cmdArgs, "-i")
	}
	if opts.Name != "" {
		cmdArgs = append(cmdArgs, "--name", opts.Name)
	}
	if opts.User != "" {
		cmdArgs = append(cmdArgs, "--user", opts.User)
	}
	if opts.MountSource != "" {
		cmdArgs = append(cmdArgs, "-v", fmt.Sprintf("%s:%s", opts.MountSource, opts.Workdir))
	}
	if opts.Workdir != "" {
		cmdArgs = append(cmdArgs, "-w", opts.Workdir)
	}
	cmdArgs = append(cmdArgs, opts.Image)
	cmdArgs = append(cmdArgs, opts.Cmd...)

	return cmdArgs
}

// Stop stops the named container, removing it if the runtime did not
// already do so.
func (d dockerEngine) Stop(ctx context.Context, name string) error {
	logger := logr.FromContextOrDiscard(ctx)

	if _, err := d.run(ctx, "stop", name); err != nil {
		return fmt.Errorf("could not stop container %s: %v", name, err)
	}

	// Containers started with --rm are already gone at this point.
	if _, err := d.run(ctx, "rm", name); err != nil {
		logger.V(log.DBG).Info("container already removed", "name", name)
	}

	return nil
}

func (d dockerEngine) run(ctx context.Context, args ...string) (string, error) {
	logger := logr.FromContextOrDiscard(ctx)

	cmd := d.cmdContext("docker", args...)
	logger.V(log.DBG).Info("running docker with the following invocation", "args", cmd.Args)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return stdout.String(), err
	}

	return stdout.String(), nil
}
