// Package image composes fully qualified container image references
// from parsed remote metadata.
package image

import (
	"errors"
	"fmt"

	"github.com/google/go-containerregistry/pkg/name"

	"github.com/devtainer/devtainer/internal/git"
)

var ErrIncompleteDescriptor = errors.New("an account and repository are required to resolve an image reference")

// Reference is a fully qualified image reference of the form
// registry/account/repository:tag.
type Reference struct {
	Registry   string
	Account    string
	Repository string
	Tag        string
}

func (r Reference) String() string {
	return fmt.Sprintf("%s/%s/%s:%s", r.Registry, r.Account, r.Repository, r.Tag)
}

// Resolve combines a RemoteDescriptor with the registry host and a tag
// to produce a Reference. The tag is tagOverride when non-empty, and
// the current branch name otherwise. The composed reference must parse
// as a valid image reference; whether it exists in the registry is a
// question for the container runtime, not this package.
func Resolve(desc git.RemoteDescriptor, registry string, tagOverride string, branch string) (Reference, error) {
	if desc.Account == "" || desc.Repository == "" {
		return Reference{}, ErrIncompleteDescriptor
	}

	tag := tagOverride
	if tag == "" {
		tag = branch
	}

	ref := Reference{
		Registry:   registry,
		Account:    desc.Account,
		Repository: desc.Repository,
		Tag:        tag,
	}

	if _, err := name.NewTag(ref.String(), name.StrictValidation); err != nil {
		return Reference{}, fmt.Errorf("composed image reference %q is invalid: %w", ref.String(), err)
	}

	return ref, nil
}
