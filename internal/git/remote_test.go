package git

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Remote URL parsing", func() {
	DescribeTable("Recognized remote URL shapes",
		func(url string, expected RemoteDescriptor) {
			desc, err := ParseRemote(url)
			Expect(err).ToNot(HaveOccurred())
			Expect(desc).To(Equal(expected))
		},
		Entry("SSH form with .git suffix",
			"git@github.com:Octocat/Hello-World.git",
			RemoteDescriptor{Scheme: SchemeSSH, Account: "octocat", Repository: "Hello-World"}),
		Entry("SSH form without .git suffix",
			"git@github.com:octocat/hello-world",
			RemoteDescriptor{Scheme: SchemeSSH, Account: "octocat", Repository: "hello-world"}),
		Entry("HTTPS form with .git suffix",
			"https://github.com/Octocat/Hello-World.git",
			RemoteDescriptor{Scheme: SchemeHTTPS, Account: "octocat", Repository: "Hello-World"}),
		Entry("HTTPS form without .git suffix",
			"https://github.com/User_Name/repo_name",
			RemoteDescriptor{Scheme: SchemeHTTPS, Account: "user_name", Repository: "repo_name"}),
		Entry("SSH form on a non-github host",
			"git@example.com:Team/project.git",
			RemoteDescriptor{Scheme: SchemeSSH, Account: "team", Repository: "project"}),
	)

	When("the account segment differs only by case", func() {
		It("should yield the same lowercase account", func() {
			upper, err := ParseRemote("git@github.com:ABC/repo.git")
			Expect(err).ToNot(HaveOccurred())
			lower, err := ParseRemote("git@github.com:abc/repo.git")
			Expect(err).ToNot(HaveOccurred())
			Expect(upper.Account).To(Equal("abc"))
			Expect(upper.Account).To(Equal(lower.Account))
		})
	})

	When("parsing the same URL twice", func() {
		It("should yield identical descriptors", func() {
			first, err := ParseRemote("https://github.com/octocat/hello-world")
			Expect(err).ToNot(HaveOccurred())
			second, err := ParseRemote("https://github.com/octocat/hello-world")
			Expect(err).ToNot(HaveOccurred())
			Expect(first).To(Equal(second))
		})
	})

	DescribeTable("Unparseable remote URLs",
		func(url string) {
			desc, err := ParseRemote(url)
			Expect(err).To(MatchError(ErrInvalidRemoteURL))
			Expect(err.Error()).To(ContainSubstring(url))
			Expect(desc.Account).To(BeEmpty())
			Expect(desc.Repository).To(BeEmpty())
		},
		Entry("not a URL at all", "not-a-url"),
		Entry("unsupported scheme", "foo://bar@github.com/user/repo.git"),
		Entry("http rather than https", "http://github.com/user/repo"),
		Entry("SSH form missing the repository segment", "git@github.com:useronly"),
		Entry("HTTPS form with a nested path", "https://github.com/group/subgroup/repo"),
		Entry("empty string", ""),
	)
})
