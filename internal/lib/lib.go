// Package lib wires git metadata, remote parsing, and image reference
// resolution into the single resolved view the commands consume.
package lib

import (
	"context"
	"path"

	"github.com/devtainer/devtainer/internal/config"
	"github.com/devtainer/devtainer/internal/git"
	"github.com/devtainer/devtainer/internal/image"
)

// DefaultSourceBase is where the project source lives inside the
// container; the repository name is appended to it.
const DefaultSourceBase = "/usr/local/src"

// GitMetadata is the subset of the git engine needed to resolve
// configuration from the working tree.
type GitMetadata interface {
	RemoteURL(ctx context.Context) (string, error)
	Branch(ctx context.Context) (string, error)
}

// ResolvedConfig is the fully derived harness configuration: remote
// metadata combined with the registry settings into concrete image and
// container values. Nothing here is persisted; it is recomputed on
// every invocation.
type ResolvedConfig struct {
	RemoteURL     string `json:"remote_url"`
	Account       string `json:"account"`
	Repository    string `json:"repository"`
	Branch        string `json:"branch"`
	Image         string `json:"image"`
	SourcePath    string `json:"source_path"`
	ContainerName string `json:"container_name"`
}

// ResolveImageConfig derives a ResolvedConfig from cfg, consulting
// gitMeta only for values cfg does not override. An unparseable remote
// URL is fatal here; no partial configuration is returned.
func ResolveImageConfig(ctx context.Context, gitMeta GitMetadata, cfg config.Config) (*ResolvedConfig, error) {
	remote := cfg.Remote()
	if remote == "" {
		url, err := gitMeta.RemoteURL(ctx)
		if err != nil {
			return nil, err
		}
		remote = url
	}

	desc, err := git.ParseRemote(remote)
	if err != nil {
		return nil, err
	}

	branch, err := gitMeta.Branch(ctx)
	if err != nil {
		// The branch is only required when it becomes the tag.
		if cfg.Tag() == "" {
			return nil, err
		}
		branch = ""
	}

	ref, err := image.Resolve(desc, cfg.Registry(), cfg.Tag(), branch)
	if err != nil {
		return nil, err
	}

	containerName := cfg.ContainerName()
	if containerName == "" {
		containerName = desc.Repository
	}

	return &ResolvedConfig{
		RemoteURL:     remote,
		Account:       desc.Account,
		Repository:    desc.Repository,
		Branch:        branch,
		Image:         ref.String(),
		SourcePath:    path.Join(DefaultSourceBase, desc.Repository),
		ContainerName: containerName,
	}, nil
}
