package check

// Result records a single check execution and the output it produced.
type Result struct {
	Check
	Output string
}

// Results is the accumulated outcome of a check run. Failed holds
// checks whose tool exited non-zero; Errors holds checks that could
// not be executed at all.
type Results struct {
	Image  string
	Passed []Result
	Failed []Result
	Errors []Result
}

// PassedOverall is true when every executed check passed.
func (r Results) PassedOverall() bool {
	return len(r.Failed) == 0 && len(r.Errors) == 0
}
