package avmcmp

import "github.com/avm2rt/avm2core/internal/avmvalue"

// CompareFunc is a user-supplied three-way comparison: negative if x < y,
// zero if equal, positive if x > y.
type CompareFunc func(x, y avmvalue.Any) int

// delegateComparer wraps a CompareFunc. Equals is derived from Compare
// returning zero; Hash is unavailable in the general case (a delegate has
// no notion of "equal under some canonical key" cheaper than a pairwise
// compare), so it returns the same constant for every value — values the
// delegate calls equal always hash equal, and a hash-keyed structure using
// it puts everything in one bucket and relies on Equals.
type delegateComparer struct {
	fn CompareFunc
}

// FromFunc builds a Comparer around a user three-way comparison function
// (§4.5's "delegate-backed comparer").
func FromFunc(fn CompareFunc) Comparer {
	return &delegateComparer{fn: fn}
}

func (d *delegateComparer) Equals(x, y avmvalue.Any) bool { return d.fn(x, y) == 0 }
func (d *delegateComparer) Compare(x, y avmvalue.Any) int { return d.fn(x, y) }
func (d *delegateComparer) Hash(x avmvalue.Any) uint64    { return 0 }

func (d *delegateComparer) IndexOf(items []avmvalue.Any, value avmvalue.Any, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(items); i++ {
		if d.Equals(items[i], value) {
			return i
		}
	}
	return -1
}

func (d *delegateComparer) LastIndexOf(items []avmvalue.Any, value avmvalue.Any, start int) int {
	if start < 0 || start >= len(items) {
		start = len(items) - 1
	}
	for i := start; i >= 0; i-- {
		if d.Equals(items[i], value) {
			return i
		}
	}
	return -1
}

func (d *delegateComparer) SequenceEqual(a, b []avmvalue.Any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !d.Equals(a[i], b[i]) {
			return false
		}
	}
	return true
}

// DynamicInvoker is the minimal hook a dynamic-function comparer needs:
// invoke a scripted comparison function with two boxed arguments and
// return its result, interpreting only the sign of a numeric result.
type DynamicInvoker interface {
	Invoke(args []avmvalue.Any) (avmvalue.Any, error)
}

// FromDynamicFunction builds a Comparer that boxes its operands into Any
// arguments, invokes a scripted comparator, and interprets the numeric
// result as sign only — §4.5's "dynamic-function comparer". An invocation
// error is swallowed into 0 (treated as equal) since Comparer has no error
// return; callers needing the error should invoke fn directly.
func FromDynamicFunction(fn DynamicInvoker) Comparer {
	return FromFunc(func(x, y avmvalue.Any) int {
		result, err := fn.Invoke([]avmvalue.Any{x, y})
		if err != nil {
			return 0
		}
		return sign3(result.AsFloat64(), 0)
	})
}
