package avmvalue

import "math"

// Equals is the strict-equality variant: same tag and same value (bits for
// bool/int32/uint32, numeric == for float64 so NaN never equals itself and
// +0 equals -0, string content, reference identity).
// Undefined compares strictly equal only to undefined (§3.1 invariant).
func (a Any) Equals(b Any) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindUndefined, KindNull:
		return true
	case KindBool, KindInt32, KindUint32:
		return a.num == b.num
	case KindFloat64:
		return math.Float64frombits(a.num) == math.Float64frombits(b.num)
	case KindString:
		return a.str == b.str
	case KindObject:
		return a.ref == b.ref
	default:
		return false
	}
}

// LooseEquals adds numeric coercion between numeric tags, plus the rule
// that undefined loosely equals null (and vice versa) but nothing else.
func (a Any) LooseEquals(b Any) bool {
	if a.kind == b.kind {
		return a.Equals(b)
	}

	switch {
	case a.kind == KindUndefined && b.kind == KindNull,
		a.kind == KindNull && b.kind == KindUndefined:
		return true
	}

	if isNumericKind(a.kind) && isNumericKind(b.kind) {
		return a.AsFloat64() == b.AsFloat64()
	}

	// number <-> string: coerce the string to a number.
	if a.kind == KindString && isNumericKind(b.kind) {
		return a.AsFloat64() == b.AsFloat64()
	}
	if b.kind == KindString && isNumericKind(a.kind) {
		return a.AsFloat64() == b.AsFloat64()
	}

	// bool <-> anything: coerce bool to number and retry.
	if a.kind == KindBool {
		return NewFloat64(a.AsFloat64()).LooseEquals(b)
	}
	if b.kind == KindBool {
		return a.LooseEquals(NewFloat64(b.AsFloat64()))
	}

	return false
}

func isNumericKind(k Kind) bool {
	return k == KindInt32 || k == KindUint32 || k == KindFloat64
}
