package shell

import (
	"slices"

	"github.com/danmuck/rootctl/internal/lines"
)

// NoAttempt is the CommandNumber value for logical commands that never
// succeeded, including everything past an abort point.
const NoAttempt = -1

// Result is the immutable outcome of one queue run. The embedded line buffer
// carries the aggregated output and its query surface.
type Result struct {
	lines.Buffer

	runID    string
	code     int
	accepted []int
	winners  []int
}

func newResult(runID string, st runState, accepted []int) *Result {
	return &Result{
		Buffer:   lines.New(st.output),
		runID:    runID,
		code:     st.code,
		accepted: accepted,
		winners:  slices.Clone(st.winners),
	}
}

func (r *Result) RunID() string {
	return r.runID
}

// ExitCode returns the status of the last executed attempt, or
// sentinel.StatusUnknown when no status was ever parsed.
func (r *Result) ExitCode() int {
	return r.code
}

// AcceptedCodes returns the accepted-code snapshot this run was judged by.
func (r *Result) AcceptedCodes() []int {
	return slices.Clone(r.accepted)
}

// Successful reports whether the final exit code is in the accepted set the
// run was configured with.
func (r *Result) Successful() bool {
	return slices.Contains(r.accepted, r.code)
}

// CommandNumber returns the attempt index that satisfied logical command n,
// or NoAttempt when n is outside the range of commands that succeeded.
func (r *Result) CommandNumber(n int) int {
	if n < 0 || n >= len(r.winners) {
		return NoAttempt
	}
	return r.winners[n]
}
