package avmclass

import "github.com/avm2rt/avm2core/internal/avmname"

// Class owns a trait table: an ordered sequence of Trait records keyed by
// QName. A class also owns (at most) one class constructor, held
// separately from the trait table per §3.3.
type Class struct {
	Name    string
	Parent  *Class // non-owning; nil for a root class
	traits  []*Trait
	index   map[string]int // normalized QName string -> index into traits
	ctor    *Trait
	dynamic bool // classes flagged dynamic expose a DynamicBag fallback
}

// NewClass creates an empty class. parent may be nil.
func NewClass(name string, parent *Class) *Class {
	return &Class{
		Name:   name,
		Parent: parent,
		index:  make(map[string]int),
	}
}

// SetDynamic marks whether instances of this class support a dynamic
// property bag fallback during binding (§4.1).
func (c *Class) SetDynamic(dynamic bool) { c.dynamic = dynamic }
func (c *Class) IsDynamic() bool         { return c.dynamic }

func traitKey(name avmname.QName) string {
	return name.NS.Kind.String() + "|" + name.NS.URI + "|" + name.Local
}

// AddTrait appends a trait to the table, setting its DeclaringClass
// back-reference. Traits are expected to be added once, at class-creation
// time; the table is treated as immutable afterward (§3.3).
func (c *Class) AddTrait(t *Trait) {
	t.DeclaringClass = c
	key := traitKey(t.Name)
	c.index[key] = len(c.traits)
	c.traits = append(c.traits, t)
}

// SetConstructor installs the class's single constructor (not part of the
// trait table, owned directly by the class per §3.3).
func (c *Class) SetConstructor(t *Trait) {
	t.DeclaringClass = c
	c.ctor = t
}

func (c *Class) Constructor() *Trait { return c.ctor }

// OwnTrait looks up a trait declared directly on this class (not its
// ancestors) by exact QName.
func (c *Class) OwnTrait(name avmname.QName) (*Trait, bool) {
	idx, ok := c.index[traitKey(name)]
	if !ok {
		return nil, false
	}
	return c.traits[idx], true
}

// OwnTraitsByLocal returns every own trait whose local name matches exactly
// (AS3 identifiers are case-sensitive, §3.2), across all namespaces.
func (c *Class) OwnTraitsByLocal(local string) []*Trait {
	var out []*Trait
	for _, t := range c.traits {
		if t.Name.Local == local {
			out = append(out, t)
		}
	}
	return out
}

// Lookup walks this class then its ancestor chain for an exact-QName
// trait, returning the first (most-derived) match.
func (c *Class) Lookup(name avmname.QName) (*Trait, bool) {
	for cur := c; cur != nil; cur = cur.Parent {
		if t, ok := cur.OwnTrait(name); ok {
			return t, true
		}
	}
	return nil, false
}

// LookupByLocal walks this class then its ancestor chain, collecting every
// trait (across the full hierarchy) whose local name matches, most-derived
// first. avmbind's namespace-set resolution does not use it; it calls
// Lookup once per candidate namespace.
func (c *Class) LookupByLocal(local string) []*Trait {
	var out []*Trait
	for cur := c; cur != nil; cur = cur.Parent {
		out = append(out, cur.OwnTraitsByLocal(local)...)
	}
	return out
}

// IsDescendantOf reports whether c is other or inherits from it
// (transitively), mirroring the teacher's ClassRegistry.IsDescendantOf.
func (c *Class) IsDescendantOf(other *Class) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur == other {
			return true
		}
	}
	return false
}

// Depth returns the number of ancestors between c and the hierarchy root
// (root has depth 0); used to decide which of two traits from a namespace
// set is "more derived" during ambiguity resolution.
func (c *Class) Depth() int {
	d := 0
	for cur := c.Parent; cur != nil; cur = cur.Parent {
		d++
	}
	return d
}
