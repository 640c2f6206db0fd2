// Package avmstub implements the dispatch-stub generator (§4.3): for each
// field, method, and constructor trait, a lazily-created thunk of uniform
// signature that absorbs argument coercion, default/rest handling, and
// boxing, so callers never branch on the trait's native shape.
//
// Per SPEC_FULL.md's REDESIGN FLAGS resolution, this module takes option
// (b) from §9: a small interpreter over a compact per-trait "coercion
// program", not compile-time monomorphization — Go has no runtime IL
// emitter, and a coercion-program interpreter has the lower first-use
// latency §9 calls out as option (b)'s advantage.
//
// Grounded on the teacher's internal/interp/runtime/method_registry.go:
// metadata resolved once and cached by ID, installed under a mutex with an
// idempotent "at most one survives" contract (§5).
package avmstub

import (
	"sync"

	"github.com/avm2rt/avm2core/internal/avmconv"
	"github.com/avm2rt/avm2core/internal/avmvalue"
)

// ParamSpec describes one formal parameter of a method/constructor trait.
type ParamSpec struct {
	TypeName     string
	HasDefault   bool
	Default      avmvalue.Any
	IsRest       bool // absorbs all remaining positional arguments
}

// FieldProgram is the compiled coercion program for a field trait.
type FieldProgram struct {
	FieldType string
}

// Call coerces value (if setFlag) or loads+coerces the field's current
// value (if !setFlag), via the supplied raw accessors. This is the
// "(receiver, value, setFlag) -> Any" uniform field-stub signature of
// §4.3.
func (p *FieldProgram) Call(setFlag bool, rawGet func() any, rawSet func(any) error, value avmvalue.Any) (avmvalue.Any, error) {
	if setFlag {
		coerced, err := avmconv.CoerceToNative(value, p.FieldType)
		if err != nil {
			return avmvalue.Undefined, err
		}
		if err := rawSet(coerced); err != nil {
			return avmvalue.Undefined, err
		}
		return avmvalue.Undefined, nil
	}
	raw := rawGet()
	return avmconv.CoerceFromNative(raw, p.FieldType), nil
}

// OptionalParamMissing is the sentinel passed to a native method for an
// optional parameter without a default when the caller omitted it (§4.3
// GLOSSARY: "OptionalParam missing").
var OptionalParamMissing = struct{ name string }{name: "OptionalParamMissing"}

// MethodProgram is the compiled coercion program for a method or
// constructor trait.
type MethodProgram struct {
	Params     []ParamSpec
	ReturnType string // "" for void
	Required   int    // number of required leading parameters
}

// ErrArityMismatch is returned when the supplied argument count falls
// outside [Required, len(Params)] (or is less than Required when a rest
// parameter makes the upper bound unbounded).
type ErrArityMismatch struct {
	Got, Min, Max int
}

func (e *ErrArityMismatch) Error() string {
	return "argument count out of range"
}

// Call checks arity, coerces each argument, materializes missing optional
// parameters from their defaults (or OptionalParamMissing), collects a
// rest parameter if declared, invokes native, and coerces the result to
// Any (undefined for a void return) — the uniform
// "(receiver, args) -> Any" method-stub signature of §4.3.
func (p *MethodProgram) Call(native func(args []any) (any, error), receiver avmvalue.Any, args []avmvalue.Any) (avmvalue.Any, error) {
	hasRest := len(p.Params) > 0 && p.Params[len(p.Params)-1].IsRest
	max := len(p.Params)
	if hasRest {
		max = -1 // unbounded
	}
	if len(args) < p.Required || (max >= 0 && len(args) > max) {
		return avmvalue.Undefined, &ErrArityMismatch{Got: len(args), Min: p.Required, Max: max}
	}

	nativeArgs := make([]any, 0, len(p.Params))
	for i, param := range p.Params {
		if param.IsRest {
			rest := make([]any, 0, len(args)-i)
			for _, a := range args[i:] {
				coerced, err := avmconv.CoerceToNative(a, "")
				if err != nil {
					return avmvalue.Undefined, err
				}
				rest = append(rest, coerced)
			}
			nativeArgs = append(nativeArgs, rest)
			break
		}
		if i < len(args) {
			coerced, err := avmconv.CoerceToNative(args[i], param.TypeName)
			if err != nil {
				return avmvalue.Undefined, err
			}
			nativeArgs = append(nativeArgs, coerced)
			continue
		}
		if param.HasDefault {
			coerced, err := avmconv.CoerceToNative(param.Default, param.TypeName)
			if err != nil {
				return avmvalue.Undefined, err
			}
			nativeArgs = append(nativeArgs, coerced)
			continue
		}
		nativeArgs = append(nativeArgs, OptionalParamMissing)
	}

	result, err := native(nativeArgs)
	if err != nil {
		return avmvalue.Undefined, err // native invocation failures propagate unchanged (§7)
	}
	if p.ReturnType == "" {
		return avmvalue.Undefined, nil
	}
	return avmconv.CoerceFromNative(result, p.ReturnType), nil
}

// stubEntry holds the lazily-installed program for one trait and the
// lock guarding its first creation.
type stubEntry struct {
	once    sync.Once
	program any // *FieldProgram or *MethodProgram
}

// Cache is a per-class (or per-engine) dispatch-stub cache: stub creation
// is lazy per trait key, thread-safe, and idempotent — concurrent first
// calls on the same key result in exactly one installed program (the
// teacher's method_registry.go "register once, reference by ID forever"
// discipline, adapted to per-trait lazy compilation instead of eager
// registration).
type Cache struct {
	mu      sync.Mutex
	entries map[any]*stubEntry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[any]*stubEntry)}
}

// GetOrCompile returns the cached program for key, compiling it via build
// on first use. Concurrent callers for the same key block on that key's
// own sync.Once rather than the whole cache, so unrelated traits compile
// in parallel.
func (c *Cache) GetOrCompile(key any, build func() any) any {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if !ok {
		entry = &stubEntry{}
		c.entries[key] = entry
	}
	c.mu.Unlock()

	entry.once.Do(func() {
		entry.program = build()
	})
	return entry.program
}
