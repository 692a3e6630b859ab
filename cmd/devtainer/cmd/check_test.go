package cmd

import (
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("check command", func() {
	var fake *fakeContainerEngine

	BeforeEach(createAndCleanupDirForArtifactsAndLogs)

	BeforeEach(func() {
		fake = &fakeContainerEngine{runOutput: "tool output"}
		useFakeEngine(fake)

		os.Setenv("DVTR_REMOTE", "git@github.com:DevTainer/sandbox.git")
		os.Setenv("DVTR_TAG", "main")
		DeferCleanup(os.Unsetenv, "DVTR_REMOTE")
		DeferCleanup(os.Unsetenv, "DVTR_TAG")
	})

	Context("when all checks pass", func() {
		It("should run every default check and write results", func() {
			out, err := executeCommand(rootCmd(), "check")
			Expect(err).ToNot(HaveOccurred())
			Expect(fake.runs).To(HaveLen(5))
			Expect(out).To(ContainSubstring("PASSED"))

			resultsFile := filepath.Join(os.Getenv("DVTR_ARTIFACTS"), "results.txt")
			_, statErr := os.Stat(resultsFile)
			Expect(statErr).ToNot(HaveOccurred())
		})
	})

	Context("when all checks are requested by name", func() {
		It("should behave like the bare command", func() {
			_, err := executeCommand(rootCmd(), "check", "all")
			Expect(err).ToNot(HaveOccurred())
			Expect(fake.runs).To(HaveLen(5))
		})
	})

	Context("when a single check is named", func() {
		It("should run only that check", func() {
			_, err := executeCommand(rootCmd(), "check", "black")
			Expect(err).ToNot(HaveOccurred())
			Expect(fake.runs).To(HaveLen(1))
			Expect(fake.runs[0].Cmd[0]).To(Equal("black"))
		})

		It("should reject an unknown check name", func() {
			_, err := executeCommand(rootCmd(), "check", "does-not-exist")
			Expect(err).To(HaveOccurred())
			Expect(fake.runs).To(BeEmpty())
		})
	})

	Context("when a check fails inside the container", func() {
		It("should report the failure and exit nonzero", func() {
			// A tool exiting nonzero surfaces as an ExitError from the runner.
			fake.failWith = exec.Command("false").Run()
			_, err := executeCommand(rootCmd(), "check", "flake8")
			Expect(err).To(MatchError(ErrChecksFailed))
		})
	})
})
