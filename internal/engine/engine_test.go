package engine

import (
	"context"
	"errors"
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/devtainer/devtainer/internal/check"
	"github.com/devtainer/devtainer/internal/docker"
)

// fakeRunner scripts per-tool outcomes keyed by the first argv element.
type fakeRunner struct {
	failing  map[string]bool
	erroring map[string]bool
	calls    []docker.RunOptions
}

func (f *fakeRunner) Run(ctx context.Context, opts docker.RunOptions) (string, error) {
	f.calls = append(f.calls, opts)
	tool := opts.Cmd[0]
	if f.erroring[tool] {
		return "", errors.New("docker daemon unreachable")
	}
	if f.failing[tool] {
		return "1 failed", exitError()
	}
	return "ok", nil
}

// exitError produces a real *exec.ExitError by running a command that
// exits non-zero.
func exitError() error {
	err := exec.Command("false").Run()
	if err == nil {
		panic("expected false to exit non-zero")
	}
	return err
}

var _ = Describe("Check engine", func() {
	var runner *fakeRunner
	var eng CheckEngine

	BeforeEach(func() {
		runner = &fakeRunner{failing: map[string]bool{}, erroring: map[string]bool{}}
		eng = CheckEngine{
			Runner: runner,
			RunOptions: docker.RunOptions{
				Image:   "ghcr.io/octocat/hello-world:main",
				Workdir: "/usr/local/src/hello-world",
			},
			Checks: check.DefaultChecks(),
		}
	})

	When("all checks pass", func() {
		It("should record every check as passed", func() {
			Expect(eng.ExecuteChecks(context.Background())).To(Succeed())
			results := eng.Results(context.Background())
			Expect(results.Passed).To(HaveLen(len(check.DefaultChecks())))
			Expect(results.Failed).To(BeEmpty())
			Expect(results.Errors).To(BeEmpty())
			Expect(results.PassedOverall()).To(BeTrue())
		})

		It("should run every check against the configured image and workdir", func() {
			Expect(eng.ExecuteChecks(context.Background())).To(Succeed())
			for _, call := range runner.calls {
				Expect(call.Image).To(Equal("ghcr.io/octocat/hello-world:main"))
				Expect(call.Workdir).To(Equal("/usr/local/src/hello-world"))
			}
		})
	})

	When("a tool exits non-zero", func() {
		It("should record the failure and keep running later checks", func() {
			runner.failing["black"] = true
			Expect(eng.ExecuteChecks(context.Background())).To(Succeed())
			results := eng.Results(context.Background())
			Expect(results.Failed).To(HaveLen(1))
			Expect(results.Failed[0].Name()).To(Equal("black"))
			Expect(runner.calls).To(HaveLen(len(check.DefaultChecks())))
			Expect(results.PassedOverall()).To(BeFalse())
		})
	})

	When("a check cannot be executed at all", func() {
		It("should record it as an error, not a failure", func() {
			runner.erroring["mypy"] = true
			Expect(eng.ExecuteChecks(context.Background())).To(Succeed())
			results := eng.Results(context.Background())
			Expect(results.Errors).To(HaveLen(1))
			Expect(results.Errors[0].Name()).To(Equal("mypy"))
			Expect(results.Failed).To(BeEmpty())
		})
	})

	When("no runner is configured", func() {
		It("should refuse to execute", func() {
			eng.Runner = nil
			Expect(eng.ExecuteChecks(context.Background())).ToNot(Succeed())
		})
	})
})
