// Package version contains all identifiable versioning info for
// describing the devtainer project.
package version

import (
	"context"
	"fmt"
	"strings"

	semver "github.com/Masterminds/semver/v3"
	"github.com/go-logr/logr"
	"github.com/google/go-github/v57/github"
	"github.com/spf13/cobra"
)

var (
	projectName = "github.com/devtainer/devtainer"
	version     = "unknown"
	commit      = "unknown"
)

var Version = VersionContext{
	Name:    projectName,
	Version: version,
	Commit:  commit,
}

type VersionClient interface {
	GetLatestRelease(ctx context.Context, owner string, repo string) (*github.RepositoryRelease, *github.Response, error)
}

type VersionContext struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

func (vc *VersionContext) String() string {
	return fmt.Sprintf("%s <commit: %s>", vc.Version, vc.Commit)
}

// LatestReleasedVersion asks GitHub for the project's latest release
// and returns it when it differs from the running version, or nil when
// the running version is current.
func (vc *VersionContext) LatestReleasedVersion(cmd *cobra.Command, svc VersionClient) (*github.RepositoryRelease, error) {
	ctx := cmd.Context()
	logger := logr.FromContextOrDiscard(ctx)

	// The project name doubles as the GitHub owner/repo coordinates.
	tokens := strings.Split(vc.Name, "/")
	owner, repo := tokens[1], tokens[2]

	latestRelease, resp, err := svc.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	logger.V(1).Info("queried GitHub for the latest release", "rate limit", resp.Rate.String())

	currentVersion, err := semver.NewVersion(vc.Version)
	if err != nil {
		return nil, fmt.Errorf("running version %q is not a semver: %w", vc.Version, err)
	}
	latestVersion, err := semver.NewVersion(latestRelease.GetTagName())
	if err != nil {
		return nil, fmt.Errorf("release tag %q is not a semver: %w", latestRelease.GetTagName(), err)
	}

	if currentVersion.Equal(latestVersion) {
		return nil, nil
	}
	return latestRelease, nil
}
