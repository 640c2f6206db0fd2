// Package avmcmp implements the per-type comparer API (§4.5): equality,
// three-way ordering, hashing, and the specialized search helpers that
// built over ordering (indexOf/lastIndexOf/sequenceEqual), in four modes
// plus a delegate-backed and a dynamic-function-backed comparer.
//
// Grounded on the teacher's internal/interp/builtins_strings_compare.go
// (CompareText/CompareStr/SameText string-compare builtins) and
// internal/interp/runtime/primitives.go's numeric ordering, generalized
// from free functions into mode-keyed singleton Comparer objects.
package avmcmp

import (
	"math"
	"strings"

	"golang.org/x/text/cases"

	"github.com/avm2rt/avm2core/internal/avmnumber"
	"github.com/avm2rt/avm2core/internal/avmvalue"
)

// Mode selects a comparer's coercion and ordering rule.
type Mode uint8

const (
	// Default compares type-appropriately: numeric < for numbers,
	// ordinal compare for strings, NaN never equal to anything (including
	// itself).
	Default Mode = iota
	// Numeric coerces both operands to float64 and compares numerically.
	// NaN is never equal to NaN in Equals, but Compare treats NaN as equal
	// to NaN so that sorts terminate (the tie-break §4.5 calls out).
	Numeric
	// String coerces both operands to string and performs an ordinal
	// (byte-wise) compare.
	String
	// StringIgnoreCase is String with Unicode case folding applied first.
	StringIgnoreCase
)

// Comparer implements equality, three-way ordering, and a hash consistent
// with Equals (equal values hash equal).
type Comparer interface {
	Equals(x, y avmvalue.Any) bool
	Compare(x, y avmvalue.Any) int
	Hash(x avmvalue.Any) uint64
	IndexOf(items []avmvalue.Any, value avmvalue.Any, start int) int
	LastIndexOf(items []avmvalue.Any, value avmvalue.Any, start int) int
	SequenceEqual(a, b []avmvalue.Any) bool
}

var (
	defaultComparer          = &modeComparer{mode: Default}
	numericComparer          = &modeComparer{mode: Numeric}
	stringComparer           = &modeComparer{mode: String}
	stringIgnoreCaseComparer = &modeComparer{mode: StringIgnoreCase}
	foldCaser                = cases.Fold()
)

// Get returns the singleton Comparer for mode.
func Get(mode Mode) Comparer {
	switch mode {
	case Numeric:
		return numericComparer
	case String:
		return stringComparer
	case StringIgnoreCase:
		return stringIgnoreCaseComparer
	default:
		return defaultComparer
	}
}

type modeComparer struct{ mode Mode }

func (c *modeComparer) Equals(x, y avmvalue.Any) bool {
	switch c.mode {
	case Numeric:
		fx, fy := x.AsFloat64(), y.AsFloat64()
		if math.IsNaN(fx) || math.IsNaN(fy) {
			return false
		}
		return fx == fy
	case String:
		return x.AsString() == y.AsString()
	case StringIgnoreCase:
		return foldCaser.String(x.AsString()) == foldCaser.String(y.AsString())
	default:
		return x.Equals(y)
	}
}

func (c *modeComparer) Compare(x, y avmvalue.Any) int {
	switch c.mode {
	case Numeric:
		fx, fy := x.AsFloat64(), y.AsFloat64()
		xNaN, yNaN := math.IsNaN(fx), math.IsNaN(fy)
		if xNaN && yNaN {
			return 0 // tie-break only, not Equals
		}
		if xNaN {
			return -1
		}
		if yNaN {
			return 1
		}
		return sign3(fx, fy)
	case String:
		return strings.Compare(x.AsString(), y.AsString())
	case StringIgnoreCase:
		return strings.Compare(foldCaser.String(x.AsString()), foldCaser.String(y.AsString()))
	default:
		return defaultCompare(x, y)
	}
}

func defaultCompare(x, y avmvalue.Any) int {
	if isNumericKind(x.Kind()) && isNumericKind(y.Kind()) {
		fx, fy := x.AsFloat64(), y.AsFloat64()
		xNaN, yNaN := math.IsNaN(fx), math.IsNaN(fy)
		if xNaN && yNaN {
			return 0 // tie-break only, not Equals
		}
		if xNaN {
			return -1
		}
		if yNaN {
			return 1
		}
		return sign3(fx, fy)
	}
	return strings.Compare(x.AsString(), y.AsString())
}

func isNumericKind(k avmvalue.Kind) bool {
	return k == avmvalue.KindInt32 || k == avmvalue.KindUint32 || k == avmvalue.KindFloat64 || k == avmvalue.KindBool
}

func sign3(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (c *modeComparer) Hash(x avmvalue.Any) uint64 {
	switch c.mode {
	case Numeric:
		return fnv64(formatNumericKey(x.AsFloat64()))
	case StringIgnoreCase:
		return fnv64(foldCaser.String(x.AsString()))
	case String:
		return fnv64(x.AsString())
	default:
		switch x.Kind() {
		case avmvalue.KindString:
			return fnv64(x.AsString())
		case avmvalue.KindInt32, avmvalue.KindUint32, avmvalue.KindFloat64, avmvalue.KindBool:
			return fnv64(formatNumericKey(x.AsFloat64()))
		default:
			return fnv64(x.Kind().String())
		}
	}
}

func formatNumericKey(f float64) string {
	if f == 0 {
		return "0" // +0 and -0 hash identically
	}
	return avmnumber.FormatFloat(f)
}

func fnv64(s string) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

func (c *modeComparer) IndexOf(items []avmvalue.Any, value avmvalue.Any, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(items); i++ {
		if c.Equals(items[i], value) {
			return i
		}
	}
	return -1
}

func (c *modeComparer) LastIndexOf(items []avmvalue.Any, value avmvalue.Any, start int) int {
	if start < 0 || start >= len(items) {
		start = len(items) - 1
	}
	for i := start; i >= 0; i-- {
		if c.Equals(items[i], value) {
			return i
		}
	}
	return -1
}

func (c *modeComparer) SequenceEqual(a, b []avmvalue.Any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !c.Equals(a[i], b[i]) {
			return false
		}
	}
	return true
}
