// Package avmvalue implements the dynamic tagged value universe (Any/Object)
// that underlies every property read, write, invocation, and construction
// in the runtime.
//
// Shape is grounded on the teacher's internal/jsonvalue.Value: a struct
// carrying a kind tag plus kind-specific payload fields, instead of a Go
// interface{} over boxed variants — primitive kinds (bool, int32, uint32,
// float64) never allocate.
package avmvalue

import "math"

// Kind tags the variant an Any currently holds.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindInt32
	KindUint32
	KindFloat64
	KindString
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Any is the dynamic tagged value: undefined, null, bool, int32, uint32,
// float64, string, or an object reference.
type Any struct {
	kind Kind
	num  uint64 // bit pattern for bool/int32/uint32/float64
	str  string // payload for KindString
	ref  any    // payload for KindObject
}

// Object is Any restricted to never hold KindUndefined. Go cannot carve a
// variant out of Any at the type-system level, so Object is enforced by
// construction: every constructor below rejects undefined inputs.
type Object struct {
	v Any
}

// --- constructors ---

// Undefined is the shared undefined value.
var Undefined = Any{kind: KindUndefined}

// Null is the shared null value.
var Null = Any{kind: KindNull}

func NewBool(b bool) Any {
	var n uint64
	if b {
		n = 1
	}
	return Any{kind: KindBool, num: n}
}

func NewInt32(v int32) Any {
	return Any{kind: KindInt32, num: uint64(uint32(v))}
}

func NewUint32(v uint32) Any {
	return Any{kind: KindUint32, num: uint64(v)}
}

func NewFloat64(v float64) Any {
	return Any{kind: KindFloat64, num: math.Float64bits(v)}
}

func NewString(s string) Any {
	return Any{kind: KindString, str: s}
}

// NewObjectRef boxes an arbitrary object reference. A nil ref is
// represented distinctly from Null: it is still KindObject so that type
// checks against a reference type still apply (§4.4 "null passes").
func NewObjectRef(ref any) Any {
	return Any{kind: KindObject, ref: ref}
}

// ToObject converts a to an Object. It fails only for KindUndefined.
func ToObject(a Any) (Object, bool) {
	if a.kind == KindUndefined {
		return Object{}, false
	}
	return Object{v: a}, true
}

// MustObject panics if a is undefined; for call sites that already checked.
func MustObject(a Any) Object {
	o, ok := ToObject(a)
	if !ok {
		panic("avmvalue: undefined has no Object representation")
	}
	return o
}

func (o Object) Any() Any { return o.v }

// --- accessors ---

func (a Any) Kind() Kind       { return a.kind }
func (a Any) IsUndefined() bool { return a.kind == KindUndefined }
func (a Any) IsNull() bool      { return a.kind == KindNull }

// AsBool is total: undefined, null, false, numeric zero, NaN and "" convert
// to false; every other value, including any non-empty string, is true.
func (a Any) AsBool() bool {
	switch a.kind {
	case KindBool:
		return a.num != 0
	case KindInt32, KindUint32:
		return a.num != 0
	case KindFloat64:
		f := math.Float64frombits(a.num)
		return f != 0 && !math.IsNaN(f)
	case KindString:
		return a.str != ""
	case KindObject:
		return true
	default:
		return false
	}
}

// AsInt32 implements the AS3 ToInt32 rule: float->int truncates toward
// zero then wraps modulo 2^32; string parses as a float first.
func (a Any) AsInt32() int32 {
	switch a.kind {
	case KindInt32:
		return int32(uint32(a.num))
	case KindUint32:
		return int32(uint32(a.num))
	case KindBool:
		return int32(a.num)
	case KindFloat64:
		return floatToInt32(math.Float64frombits(a.num))
	case KindString:
		return floatToInt32(stringToFloatTotal(a.str))
	default:
		return 0
	}
}

func (a Any) AsUint32() uint32 {
	switch a.kind {
	case KindUint32:
		return uint32(a.num)
	case KindInt32:
		return uint32(a.num)
	case KindBool:
		return uint32(a.num)
	case KindFloat64:
		return floatToUint32(math.Float64frombits(a.num))
	case KindString:
		return floatToUint32(stringToFloatTotal(a.str))
	default:
		return 0
	}
}

func (a Any) AsFloat64() float64 {
	switch a.kind {
	case KindFloat64:
		return math.Float64frombits(a.num)
	case KindInt32:
		return float64(int32(uint32(a.num)))
	case KindUint32:
		return float64(uint32(a.num))
	case KindBool:
		if a.num != 0 {
			return 1
		}
		return 0
	case KindString:
		return stringToFloatTotal(a.str)
	case KindNull:
		return 0
	default:
		return math.NaN()
	}
}

// AsString never fails; this is the canonical-string path (§4.9 governs
// the float case; this wrapper routes there to keep -0 from surfacing).
func (a Any) AsString() string {
	switch a.kind {
	case KindString:
		return a.str
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		if a.num != 0 {
			return "true"
		}
		return "false"
	case KindInt32:
		return int32ToString(int32(uint32(a.num)))
	case KindUint32:
		return uint32ToString(uint32(a.num))
	case KindFloat64:
		return floatToStringNoNegZero(math.Float64frombits(a.num))
	case KindObject:
		return "[object Object]"
	default:
		return ""
	}
}

// Ref returns the boxed object reference and whether a holds one.
func (a Any) Ref() (any, bool) {
	if a.kind != KindObject {
		return nil, false
	}
	return a.ref, true
}

func floatToInt32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	truncated := math.Trunc(f)
	m := math.Mod(truncated, 4294967296)
	if m < 0 {
		m += 4294967296
	}
	u := uint32(m)
	return int32(u)
}

func floatToUint32(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	truncated := math.Trunc(f)
	m := math.Mod(truncated, 4294967296)
	if m < 0 {
		m += 4294967296
	}
	return uint32(m)
}
