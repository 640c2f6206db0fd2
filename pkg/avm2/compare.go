package avm2

import "github.com/avm2rt/avm2core/internal/avmcmp"

// Comparer is the §4.5 ordering/equality contract.
type Comparer = avmcmp.Comparer

// CompareMode selects the built-in comparer variant.
type CompareMode = avmcmp.Mode

const (
	CompareDefault          = avmcmp.Default
	CompareNumeric          = avmcmp.Numeric
	CompareString           = avmcmp.String
	CompareStringIgnoreCase = avmcmp.StringIgnoreCase
)

// GetComparer returns the singleton Comparer for mode.
func GetComparer(mode CompareMode) Comparer { return avmcmp.Get(mode) }

// CompareFunc is a user-supplied 3-way ordering function.
type CompareFunc = avmcmp.CompareFunc

// ComparerFromFunc builds a Comparer around a user-supplied ordering
// function, for script-level Array.sort(fn) callers.
func ComparerFromFunc(fn CompareFunc) Comparer { return avmcmp.FromFunc(fn) }

// DynamicInvoker lets a script-level function value serve as a comparer.
type DynamicInvoker = avmcmp.DynamicInvoker

func ComparerFromDynamicFunction(fn DynamicInvoker) Comparer {
	return avmcmp.FromDynamicFunction(fn)
}
