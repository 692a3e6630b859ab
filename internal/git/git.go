package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-logr/logr"

	"github.com/devtainer/devtainer/internal/log"
)

// New returns a git engine backed by cmdContext.
func New(cmdContext execContext) *gitEngine {
	engine := gitEngine{cmdContext: cmdContext}
	return &engine
}

type gitEngine struct {
	cmdContext execContext
}

// Define a type that is the signature of the exec.Command function.
// This allows us to override that function with our own for
// testing purposes. This type is only used directly in the New() function.
type execContext = func(name string, arg ...string) *exec.Cmd

// RemoteURL returns the URL configured for the origin remote.
func (g gitEngine) RemoteURL(ctx context.Context) (string, error) {
	out, err := g.output(ctx, "config", "--get", "remote.origin.url")
	if err != nil {
		return "", fmt.Errorf("could not determine the origin remote URL: %v", err)
	}

	return out, nil
}

// Branch returns the name of the currently checked out branch.
func (g gitEngine) Branch(ctx context.Context) (string, error) {
	out, err := g.output(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("could not determine the current branch: %v", err)
	}

	return out, nil
}

func (g gitEngine) output(ctx context.Context, args ...string) (string, error) {
	logger := logr.FromContextOrDiscard(ctx)

	cmd := g.cmdContext("git", args...)
	logger.V(log.DBG).Info("running git with the following invocation", "args", cmd.Args)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() != 0 {
			return "", fmt.Errorf("%v: %s", err, strings.TrimSpace(stderr.String()))
		}
		return "", err
	}

	return strings.TrimSpace(stdout.String()), nil
}
