package avm2

import "github.com/avm2rt/avm2core/internal/avmconv"

// Converter is the §4.4 type converter contract: Convert plus span
// conversion, cached as one singleton per (S, D) pair.
type Converter[S, D any] = avmconv.Converter[S, D]

// GetConverter returns the singleton Converter for S -> D, compiling it on
// first use.
func GetConverter[S, D any]() Converter[S, D] { return avmconv.Get[S, D]() }

// CastError is the structured error a cast-only converter raises for an
// input it cannot represent in D.
type CastError = avmconv.CastError

// CoerceToNative and CoerceFromNative are the dynamic, type-name-keyed
// half of the converter API the dispatch-stub interpreter uses, where the
// destination type is only known as a string at runtime.
func CoerceToNative(value Any, typeName string) (any, error) {
	return avmconv.CoerceToNative(value, typeName)
}

func CoerceFromNative(raw any, typeName string) Any {
	return avmconv.CoerceFromNative(raw, typeName)
}
