// Package avmclass implements the trait model and class registry: what a
// class declares (fields, constants, methods, accessors, a constructor)
// and the process-wide type-to-class map that lets the binding engine
// (avmbind) find a class from a receiver's underlying host type.
//
// Grounded on the teacher's internal/interp/types/class_registry.go
// (case-insensitive name map + hierarchy walk) and
// internal/interp/runtime/method_registry.go (ID-keyed, sync.RWMutex
// registry with one-time ID assignment on registration).
package avmclass

import "github.com/avm2rt/avm2core/internal/avmname"

// TraitKind tags the variant a Trait record holds.
type TraitKind uint8

const (
	TraitField TraitKind = iota
	TraitConstant
	TraitMethod
	TraitAccessorGet
	TraitAccessorSet
)

func (k TraitKind) String() string {
	switch k {
	case TraitField:
		return "field"
	case TraitConstant:
		return "constant"
	case TraitMethod:
		return "method"
	case TraitAccessorGet:
		return "get-accessor"
	case TraitAccessorSet:
		return "set-accessor"
	default:
		return "unknown"
	}
}

// Trait is one declared member of a class. Traits are immutable after
// class creation; DeclaringClass is a non-owning back-reference (the class
// owns its traits, never the reverse — §3.3's ownership invariant).
type Trait struct {
	Name           avmname.QName
	Kind           TraitKind
	DeclaringClass *Class
	Static         bool
	DeclaredType   string // name of the declared type, e.g. "int32", "String"

	// Writable applies to TraitField only; constants are never writable.
	Writable bool

	// ConstValue holds the inlined value for TraitConstant traits.
	ConstValue any

	// Method/accessor/constructor dispatch target, opaque to this package —
	// resolved and invoked via the dispatch-stub layer (avmstub).
	Native any

	Metadata MetadataTagCollection
}

// IsReadable reports whether a get operation is structurally possible
// (constants and fields are always readable; write-only accessors are not
// modeled as a distinct kind here — a missing get-accessor counterpart is
// how "write-only" is expressed, matching the teacher's optional-interface
// pattern for Value variants).
func (t *Trait) IsReadable() bool {
	switch t.Kind {
	case TraitField, TraitConstant, TraitAccessorGet:
		return true
	default:
		return false
	}
}

func (t *Trait) IsWritable() bool {
	switch t.Kind {
	case TraitField:
		return t.Writable
	case TraitAccessorSet:
		return true
	default:
		return false
	}
}

func (t *Trait) IsCallable() bool {
	return t.Kind == TraitMethod
}
