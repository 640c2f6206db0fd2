// Package avmscope implements the runtime scope stack: the walk-up lookup
// structure bytecode consults when a name cannot be resolved statically
// (§4.2).
//
// Grounded on the teacher's internal/interp/runtime/callstack.go frame
// stack shape, generalized with an optional parent-stack pointer and the
// search-option bitmask §4.2 describes.
package avmscope

import (
	"github.com/avm2rt/avm2core/internal/avmbind"
	"github.com/avm2rt/avm2core/internal/avmname"
	"github.com/avm2rt/avm2core/internal/avmvalue"
)

// SearchOptions selects which trait categories a frame participates in.
type SearchOptions uint8

const (
	SearchTraits SearchOptions = 1 << iota
	SearchDynamic
	SearchAttribute
)

const DefaultSearchOptions = SearchTraits

// Frame is one entry of a scope stack: an object plus the search options
// that govern how it is consulted.
type Frame struct {
	Object  avmvalue.Any
	Options SearchOptions
}

// Stack is the runtime scope stack. It is single-thread owned — callers
// must not share one Stack across goroutines without external
// synchronization (§5).
type Stack struct {
	frames []Frame
	parent *Stack
	engine *avmbind.Engine
}

// New creates a scope stack using engine for name resolution, optionally
// chained to parent (nil for a root stack).
func New(engine *avmbind.Engine, parent *Stack) *Stack {
	return &Stack{engine: engine, parent: parent}
}

// Push adds a frame on top of the stack with the given search options
// (defaulting to SearchTraits, per §4.2's push(obj, opts=SEARCH_TRAITS)).
func (s *Stack) Push(obj avmvalue.Any, opts ...SearchOptions) {
	o := DefaultSearchOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	s.frames = append(s.frames, Frame{Object: obj, Options: o})
}

// Pop removes the top frame. It is a no-op on an empty stack.
func (s *Stack) Pop() {
	if len(s.frames) == 0 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Clear truncates the stack down to targetSize frames (default 0, i.e.
// empty). It never touches the parent.
func (s *Stack) Clear(targetSize int) {
	if targetSize < 0 {
		targetSize = 0
	}
	if targetSize >= len(s.frames) {
		return
	}
	s.frames = s.frames[:targetSize]
}

// Len reports the number of frames in this stack (not counting the parent).
func (s *Stack) Len() int { return len(s.frames) }

// Clone returns a new stack sharing the parent reference, with a shallow
// copy of this stack's own frames — O(n) in the current stack only (§4.2
// invariant). Mutating the clone must never affect the original.
func (s *Stack) Clone() *Stack {
	c := &Stack{parent: s.parent, engine: s.engine}
	if len(s.frames) > 0 {
		c.frames = make([]Frame, len(s.frames))
		copy(c.frames, s.frames)
	}
	return c
}

// FindResult carries the outcome of Find: which frame (if any) resolved
// the name, and the bind status returned by that frame's resolution.
type FindResult struct {
	Frame  *Frame
	Status avmbind.BindStatus
	Value  avmvalue.Any
}

// Find walks from top (just-pushed) to bottom of this stack starting at
// startLevel frames down from the top, then the parent (with startLevel
// reset to 0 once crossing). The first frame whose object resolves name to
// SUCCESS or AMBIGUOUS is returned. With no match: in lenient mode
// (strict=false) the bottom-most frame is returned with SUCCESS (matching
// the "unresolved identifiers fall through silently" behavior bytecode
// expects outside strict mode); in strict mode NOT_FOUND is returned.
func (s *Stack) Find(local string, nsSet avmname.NamespaceSet, startLevel int, isAttribute bool, strict bool) FindResult {
	top := len(s.frames) - 1 - startLevel
	for i := top; i >= 0; i-- {
		frame := s.frames[i]
		searchTraits := frame.Options&SearchTraits != 0
		searchDynamic := frame.Options&SearchDynamic != 0
		searchAttribute := isAttribute && frame.Options&SearchAttribute != 0
		if !searchTraits && !searchDynamic && !searchAttribute {
			continue
		}
		v, status, _ := s.engine.GetPropertyNSSelective(frame.Object, local, nsSet, searchTraits, searchDynamic, searchAttribute)
		if status == avmbind.SUCCESS || status == avmbind.AMBIGUOUS {
			f := frame
			return FindResult{Frame: &f, Status: status, Value: v}
		}
	}

	if s.parent != nil {
		return s.parent.Find(local, nsSet, 0, isAttribute, strict)
	}

	if !strict && len(s.frames) > 0 {
		bottom := s.frames[0]
		searchTraits := bottom.Options&SearchTraits != 0
		searchDynamic := bottom.Options&SearchDynamic != 0
		searchAttribute := isAttribute && bottom.Options&SearchAttribute != 0
		v, _, _ := s.engine.GetPropertyNSSelective(bottom.Object, local, nsSet, searchTraits, searchDynamic, searchAttribute)
		return FindResult{Frame: &bottom, Status: avmbind.SUCCESS, Value: v}
	}

	return FindResult{Status: avmbind.NOT_FOUND}
}

// Get resolves name exactly as Find does and returns only the value.
func (s *Stack) Get(local string, nsSet avmname.NamespaceSet, startLevel int, isAttribute bool, strict bool) (avmvalue.Any, avmbind.BindStatus) {
	res := s.Find(local, nsSet, startLevel, isAttribute, strict)
	return res.Value, res.Status
}
