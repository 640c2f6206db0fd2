// Package avmname implements the qualified-name model used during trait
// binding: namespaces, qualified names, and namespace sets.
//
// Grounded on the teacher's internal/interp/types/function_registry.go
// qualified-name handling (normalized "unit.function" keys for overload
// lookup), generalized from a single unit qualifier to an ordered,
// de-duplicated set of namespaces searched during resolution.
package avmname

// NamespaceKind distinguishes the AS3 namespace flavors relevant to
// resolution ordering and error messages.
type NamespaceKind uint8

const (
	NamespacePublic NamespaceKind = iota
	NamespacePrivate
	NamespaceProtected
	NamespaceInternal
	NamespaceExplicit
)

// Namespace is a (kind, uri, prefix) triple with string comparison
// semantics: two namespaces are equal iff their kind and URI match (the
// prefix is a display/XML-binding aid, not part of identity).
type Namespace struct {
	Kind   NamespaceKind
	URI    string
	Prefix string
}

func New(uri string) Namespace {
	return Namespace{Kind: NamespacePublic, URI: uri}
}

func NewWithPrefix(uri, prefix string) Namespace {
	return Namespace{Kind: NamespacePublic, URI: uri, Prefix: prefix}
}

func (n Namespace) Equals(other Namespace) bool {
	return n.Kind == other.Kind && n.URI == other.URI
}

func (n Namespace) String() string {
	if n.Prefix != "" {
		return n.Prefix + ":" + n.URI
	}
	return n.URI
}

// QName is a qualified name: a namespace plus a local name.
type QName struct {
	NS    Namespace
	Local string
}

func NewQName(ns Namespace, local string) QName {
	return QName{NS: ns, Local: local}
}

func (q QName) Equals(other QName) bool {
	return q.NS.Equals(other.NS) && q.Local == other.Local
}

func (q QName) String() string {
	if q.NS.URI == "" {
		return q.Local
	}
	return q.NS.String() + "::" + q.Local
}

// NamespaceSet is an insertion-ordered, de-duplicated collection of
// namespaces, iterated in declaration order during (local, set) binding.
type NamespaceSet struct {
	items []Namespace
}

// NewNamespaceSet builds a set from the given namespaces, preserving the
// first occurrence order and dropping duplicates.
func NewNamespaceSet(namespaces ...Namespace) NamespaceSet {
	var s NamespaceSet
	for _, ns := range namespaces {
		s.Add(ns)
	}
	return s
}

// Add appends ns if it is not already present; returns true if added.
func (s *NamespaceSet) Add(ns Namespace) bool {
	for _, existing := range s.items {
		if existing.Equals(ns) {
			return false
		}
	}
	s.items = append(s.items, ns)
	return true
}

func (s NamespaceSet) Len() int { return len(s.items) }

func (s NamespaceSet) At(i int) Namespace { return s.items[i] }

// Each iterates namespaces in declared order, stopping early if fn
// returns false.
func (s NamespaceSet) Each(fn func(Namespace) bool) {
	for _, ns := range s.items {
		if !fn(ns) {
			return
		}
	}
}

// Contains reports whether ns (by Kind+URI identity) is present.
func (s NamespaceSet) Contains(ns Namespace) bool {
	for _, existing := range s.items {
		if existing.Equals(ns) {
			return true
		}
	}
	return false
}
