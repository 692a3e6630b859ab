package check

import "fmt"

var DefaultResultsFilenameBase = "results"

// DefaultChecks returns the tools the harness knows how to delegate
// into the container, in the order `all` runs them. Formatters run
// before linters, linters before the test suite.
func DefaultChecks() []Check {
	return []Check{
		NewGenericCheck("isort", []string{"isort", "--check-only", "--diff", "."}, "verify import ordering"),
		NewGenericCheck("black", []string{"black", "--check", "--diff", "."}, "verify code formatting"),
		NewGenericCheck("flake8", []string{"flake8", "."}, "run style and lint checks"),
		NewGenericCheck("mypy", []string{"mypy", "."}, "run static type checks"),
		NewGenericCheck("pytest", []string{"pytest"}, "run the test suite"),
	}
}

// ByName returns the named default check.
func ByName(name string) (Check, error) {
	for _, c := range DefaultChecks() {
		if c.Name() == name {
			return c, nil
		}
	}

	return nil, fmt.Errorf("the requested check is unknown: %s", name)
}
