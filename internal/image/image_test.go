package image

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/devtainer/devtainer/internal/git"
)

var _ = Describe("Image reference resolution", func() {
	var descriptor git.RemoteDescriptor

	BeforeEach(func() {
		descriptor = git.RemoteDescriptor{
			Scheme:     git.SchemeSSH,
			Account:    "octocat",
			Repository: "hello-world",
		}
	})

	When("no tag override is provided", func() {
		It("should use the current branch as the tag", func() {
			ref, err := Resolve(descriptor, "ghcr.io", "", "main")
			Expect(err).ToNot(HaveOccurred())
			Expect(ref.String()).To(Equal("ghcr.io/octocat/hello-world:main"))
		})
	})

	When("a tag override is provided", func() {
		It("should prefer the override to the branch", func() {
			ref, err := Resolve(descriptor, "ghcr.io", "v1.2.3", "main")
			Expect(err).ToNot(HaveOccurred())
			Expect(ref.Tag).To(Equal("v1.2.3"))
			Expect(ref.String()).To(Equal("ghcr.io/octocat/hello-world:v1.2.3"))
		})
	})

	When("the descriptor is missing its account or repository", func() {
		It("should refuse to resolve", func() {
			_, err := Resolve(git.RemoteDescriptor{Repository: "repo"}, "ghcr.io", "", "main")
			Expect(err).To(MatchError(ErrIncompleteDescriptor))

			_, err = Resolve(git.RemoteDescriptor{Account: "account"}, "ghcr.io", "", "main")
			Expect(err).To(MatchError(ErrIncompleteDescriptor))
		})
	})

	When("the composed reference is not a valid image reference", func() {
		It("should surface the validation failure", func() {
			// A branch name with a path separator cannot be used as a tag.
			_, err := Resolve(descriptor, "ghcr.io", "", "feature/new-thing")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid"))
		})
	})
})
