// Package partition splits ordered data into contiguous spans and runs a
// function over each span, returning results in span order.
//
// Two runners are provided:
//
//   - Pool runs spans on goroutines, one per span, with the span count capped
//     by the worker count and a minimum span length sized to the L2 cache.
//   - Sequential runs spans one after another on the calling goroutine and is
//     fully deterministic; it is intended for tests and reproducible runs.
//
// Results are always indexed by span, never by completion order, so callers
// can concatenate them and obtain the same answer as a single pass.
package partition

// Span is the half-open index range [Start, End) of one partition.
type Span struct {
	Start int
	End   int
}

// Len returns the number of elements in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Runner splits work into spans and executes tasks for them.
//
// Split must return contiguous, non-overlapping, non-empty spans that cover
// [0, n) in ascending order; for n == 0 it returns nil. Execute must call fn
// exactly once for every index in [0, tasks) and return only after all calls
// have finished.
type Runner interface {
	Split(n int) []Span
	Execute(tasks int, fn func(i int))
}

// Run splits data with r, invokes work once per span and returns the results
// in span order. Empty data yields nil without calling work.
func Run[T, R any](r Runner, data []T, work func(part []T) R) []R {
	spans := r.Split(len(data))
	if len(spans) == 0 {
		return nil
	}

	out := make([]R, len(spans))
	r.Execute(len(spans), func(i int) {
		s := spans[i]
		out[i] = work(data[s.Start:s.End:s.End])
	})
	return out
}

// Even splits [0, n) into parts spans whose lengths differ by at most one.
// parts is clamped to [1, n]. Returns nil for n <= 0.
func Even(n, parts int) []Span {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	spans := make([]Span, parts)
	base, extra := n/parts, n%parts
	start := 0
	for i := range spans {
		size := base
		if i < extra {
			size++
		}
		spans[i] = Span{Start: start, End: start + size}
		start += size
	}
	return spans
}

// Sequential is a deterministic single-goroutine Runner producing exactly
// min(Parts, n) spans. A zero value behaves as Parts == 1.
type Sequential struct {
	Parts int
}

// Split implements Runner.
func (s Sequential) Split(n int) []Span {
	return Even(n, s.Parts)
}

// Execute implements Runner by calling fn for each task in index order.
func (s Sequential) Execute(tasks int, fn func(i int)) {
	for i := 0; i < tasks; i++ {
		fn(i)
	}
}
