// Package engine executes checks inside the dev container and
// aggregates their results.
package engine

import (
	"context"
	"errors"
	"os/exec"

	"github.com/go-logr/logr"

	"github.com/devtainer/devtainer/internal/check"
	"github.com/devtainer/devtainer/internal/docker"
	"github.com/devtainer/devtainer/internal/log"
)

// ContainerRunner is the subset of the docker engine the check engine
// needs: the ability to run a command in a container and report its
// output and exit status.
type ContainerRunner interface {
	Run(ctx context.Context, opts docker.RunOptions) (string, error)
}

// CheckEngine runs a fixed list of checks in order inside the
// container described by RunOptions, stopping at nothing: every check
// executes regardless of earlier failures.
type CheckEngine struct {
	Runner ContainerRunner
	// RunOptions carries the image, workdir, mount, and user settings
	// shared by every check invocation. Cmd is overwritten per check.
	RunOptions docker.RunOptions
	Checks     []check.Check

	results check.Results
}

// ExecuteChecks runs all configured checks. An error is returned only
// when execution cannot proceed at all; individual check failures are
// recorded in the results.
func (e *CheckEngine) ExecuteChecks(ctx context.Context) error {
	logger := logr.FromContextOrDiscard(ctx)

	if e.Runner == nil {
		return errors.New("no container runner was configured")
	}

	e.results = check.Results{Image: e.RunOptions.Image}

	for _, c := range e.Checks {
		logger.Info("running check", "check", c.Name())

		opts := e.RunOptions
		opts.Cmd = c.Argv()

		out, err := e.Runner.Run(ctx, opts)
		result := check.Result{Check: c, Output: out}

		switch {
		case err == nil:
			e.results.Passed = append(e.results.Passed, result)
		case isExitError(err):
			logger.V(log.DBG).Info("check failed", "check", c.Name(), "error", err.Error())
			e.results.Failed = append(e.results.Failed, result)
		default:
			logger.Error(err, "could not execute check", "check", c.Name())
			result.Output = err.Error()
			e.results.Errors = append(e.results.Errors, result)
		}
	}

	return nil
}

// Results returns the results of the last ExecuteChecks call.
func (e *CheckEngine) Results(ctx context.Context) check.Results {
	return e.results
}

// isExitError distinguishes a tool exiting non-zero from docker itself
// being unusable.
func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
