// Package cli holds the runner glue shared by commands that execute
// checks: run the engine, format the results, and write them to both
// the output target and the artifacts directory.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/devtainer/devtainer/artifacts"
	"github.com/devtainer/devtainer/internal/check"
	"github.com/devtainer/devtainer/internal/formatters"
)

// CheckEngine is the engine surface RunChecks drives.
type CheckEngine interface {
	ExecuteChecks(ctx context.Context) error
	Results(ctx context.Context) check.Results
}

// RunChecks executes the engine's checks, writes formatted results to
// out and to the artifact writer from ctx, and returns the results for
// the caller to judge. A missing artifact writer is an error; checks
// never run without a place to record them.
func RunChecks(ctx context.Context, eng CheckEngine, formatter formatters.ResponseFormatter, out io.Writer) (check.Results, error) {
	logger := logr.FromContextOrDiscard(ctx)

	artifactsWriter := artifacts.WriterFromContext(ctx)
	if artifactsWriter == nil {
		return check.Results{}, errors.New("no artifact writer was configured")
	}

	if err := eng.ExecuteChecks(ctx); err != nil {
		return check.Results{}, err
	}
	results := eng.Results(ctx)

	formatted, err := formatter.Format(ctx, results)
	if err != nil {
		return check.Results{}, err
	}

	resultsPath, err := artifactsWriter.WriteFile(
		resultsFilenameWithExtension(formatter.FileExtension()),
		bytes.NewReader(formatted),
	)
	if err != nil {
		return check.Results{}, err
	}
	logger.Info("results written", "path", resultsPath)

	fmt.Fprintln(out, string(formatted))

	return results, nil
}

func resultsFilenameWithExtension(extension string) string {
	return fmt.Sprintf("%s.%s", check.DefaultResultsFilenameBase, extension)
}
