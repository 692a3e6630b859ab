package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/devtainer/devtainer/internal/docker"
)

// fakeContainerEngine records the operations commands invoke on it.
type fakeContainerEngine struct {
	builds   []docker.BuildOptions
	runs     []docker.RunOptions
	attached []docker.RunOptions
	pushes   []string
	stops    []string

	version   string
	runOutput string
	failWith  error
}

func (f *fakeContainerEngine) Version(_ context.Context) (string, error) {
	return f.version, f.failWith
}

func (f *fakeContainerEngine) Build(_ context.Context, opts docker.BuildOptions) error {
	f.builds = append(f.builds, opts)
	return f.failWith
}

func (f *fakeContainerEngine) Run(_ context.Context, opts docker.RunOptions) (string, error) {
	f.runs = append(f.runs, opts)
	return f.runOutput, f.failWith
}

func (f *fakeContainerEngine) RunAttached(_ context.Context, opts docker.RunOptions) error {
	f.attached = append(f.attached, opts)
	if opts.Stdout != nil && f.runOutput != "" {
		fmt.Fprintln(opts.Stdout, f.runOutput)
	}
	return f.failWith
}

func (f *fakeContainerEngine) Push(_ context.Context, image string) error {
	f.pushes = append(f.pushes, image)
	return f.failWith
}

func (f *fakeContainerEngine) Stop(_ context.Context, name string) error {
	f.stops = append(f.stops, name)
	return f.failWith
}

// useFakeEngine swaps the command-level engine constructor for the
// fake and restores it during cleanup.
func useFakeEngine(fake *fakeContainerEngine) {
	original := newContainerEngine
	newContainerEngine = func() containerEngine { return fake }
	DeferCleanup(func() { newContainerEngine = original })
}

var _ = Describe("container lifecycle commands", func() {
	var fake *fakeContainerEngine

	BeforeEach(createAndCleanupDirForArtifactsAndLogs)

	BeforeEach(func() {
		fake = &fakeContainerEngine{}
		useFakeEngine(fake)

		os.Setenv("DVTR_REMOTE", "git@github.com:DevTainer/sandbox.git")
		os.Setenv("DVTR_TAG", "main")
		DeferCleanup(os.Unsetenv, "DVTR_REMOTE")
		DeferCleanup(os.Unsetenv, "DVTR_TAG")
	})

	Describe("the build command", func() {
		It("should build the derived image reference", func() {
			out, err := executeCommand(rootCmd(), "build")
			Expect(err).ToNot(HaveOccurred())
			Expect(fake.builds).To(HaveLen(1))
			Expect(fake.builds[0].Tag).To(Equal("ghcr.io/devtainer/sandbox:main"))
			Expect(fake.builds[0].Dockerfile).To(Equal(DefaultDockerfile))
			Expect(fake.builds[0].Pull).To(BeTrue())
			Expect(out).To(ContainSubstring("ghcr.io/devtainer/sandbox:main"))
		})

		It("should surface a build failure", func() {
			fake.failWith = errors.New("build exploded")
			_, err := executeCommand(rootCmd(), "build")
			Expect(err).To(MatchError(ContainSubstring("build exploded")))
		})
	})

	Describe("the run command", func() {
		It("should run the given command attached to the command's streams", func() {
			fake.runOutput = "hello from the container"
			out, err := executeCommand(rootCmd(), "run", "echo", "hello")
			Expect(err).ToNot(HaveOccurred())
			Expect(fake.runs).To(BeEmpty())
			Expect(fake.attached).To(HaveLen(1))
			Expect(fake.attached[0].Image).To(Equal("ghcr.io/devtainer/sandbox:main"))
			Expect(fake.attached[0].Name).To(Equal("sandbox"))
			Expect(fake.attached[0].Workdir).To(Equal("/usr/local/src/sandbox"))
			Expect(fake.attached[0].Cmd).To(Equal([]string{"echo", "hello"}))
			// The container's stdout is the command's stdout, not a
			// buffer that is dumped after the fact.
			Expect(fake.attached[0].Stdout).ToNot(BeNil())
			Expect(fake.attached[0].Stdin).ToNot(BeNil())
			Expect(out).To(ContainSubstring("hello from the container"))
		})

		It("should default to an interactive shell when no command is given", func() {
			_, err := executeCommand(rootCmd(), "run")
			Expect(err).ToNot(HaveOccurred())
			Expect(fake.attached[0].Cmd).To(Equal([]string{"bash"}))
			Expect(fake.attached[0].TTY).To(BeTrue())
		})
	})

	Describe("the check-docker command", func() {
		It("should print the docker version", func() {
			fake.version = "Docker version 24.0.7, build afdd53b"
			out, err := executeCommand(rootCmd(), "check-docker")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("Docker version 24.0.7"))
		})

		It("should fail when docker is unusable", func() {
			fake.failWith = errors.New("docker: command not found")
			_, err := executeCommand(rootCmd(), "check-docker")
			Expect(err).To(MatchError(ContainSubstring("not found")))
		})
	})

	Describe("the stop command", func() {
		It("should stop the container named after the repository", func() {
			_, err := executeCommand(rootCmd(), "stop")
			Expect(err).ToNot(HaveOccurred())
			Expect(fake.stops).To(Equal([]string{"sandbox"}))
		})
	})

	Describe("the push command", func() {
		It("should push the derived image reference", func() {
			out, err := executeCommand(rootCmd(), "push")
			Expect(err).ToNot(HaveOccurred())
			Expect(fake.pushes).To(Equal([]string{"ghcr.io/devtainer/sandbox:main"}))
			Expect(out).To(ContainSubstring("ghcr.io/devtainer/sandbox:main"))
		})
	})
})
