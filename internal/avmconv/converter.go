// Package avmconv implements the generic type-converter API (§4.4):
// per-(source, destination) singleton objects, discovered once and reused
// forever, covering the closed conversion set { undefined, null, bool,
// int32, uint32, float64, string, Any, Object, reference T }.
//
// Grounded on the teacher's internal/interp/runtime/conversion.go total
// conversion helpers (ToInteger/ToFloat/ToBoolean/ToString never fail),
// generalized from concrete functions into a keyed singleton table so
// every (S, D) pair is discovered once and the Converter object is reused,
// matching §4.4's "cached by (source-type, destination-type)" contract.
package avmconv

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/avm2rt/avm2core/internal/avmvalue"
)

// CastError is raised by an invalid converter, or by a reference-type
// converter when the cast fails.
type CastError struct {
	From, To string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", e.From, e.To)
}

// Converter converts values of type S to type D.
type Converter[S, D any] interface {
	Convert(v S) (D, error)
	// ConvertSpanInto requires len(src) == len(dst).
	ConvertSpanInto(src []S, dst []D) error
	ConvertSpan(src []S) ([]D, error)
}

type converterFunc[S, D any] struct {
	fn func(S) (D, error)
}

func (c converterFunc[S, D]) Convert(v S) (D, error) { return c.fn(v) }

func (c converterFunc[S, D]) ConvertSpanInto(src []S, dst []D) error {
	if len(src) != len(dst) {
		return fmt.Errorf("avmconv: span length mismatch: src=%d dst=%d", len(src), len(dst))
	}
	for i, v := range src {
		d, err := c.fn(v)
		if err != nil {
			return err
		}
		dst[i] = d
	}
	return nil
}

func (c converterFunc[S, D]) ConvertSpan(src []S) ([]D, error) {
	dst := make([]D, len(src))
	if err := c.ConvertSpanInto(src, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

type pairKey struct{ src, dst reflect.Type }

var (
	registryMu sync.Mutex
	registry   = map[pairKey]any{}
)

// Get returns the singleton converter for (S, D), building and caching it
// on first use. The returned converter is total on every valid input for
// supported pairs; for pairs this package cannot meaningfully bridge, it
// raises a *CastError on every non-null invocation (§8 property 1).
func Get[S, D any]() Converter[S, D] {
	key := pairKey{
		src: reflect.TypeOf((*S)(nil)).Elem(),
		dst: reflect.TypeOf((*D)(nil)).Elem(),
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if c, ok := registry[key]; ok {
		return c.(Converter[S, D])
	}
	c := build[S, D]()
	registry[key] = c
	return c
}

func build[S, D any]() Converter[S, D] {
	return &converterFunc[S, D]{fn: func(s S) (D, error) {
		a := toAny(any(s))
		return fromAny[D](a)
	}}
}

// toAny boxes a supported Go value into Any. Anything not recognized
// below is treated as an object reference (covers "reference type T").
func toAny(v any) avmvalue.Any {
	switch x := v.(type) {
	case avmvalue.Any:
		return x
	case avmvalue.Object:
		return x.Any()
	case bool:
		return avmvalue.NewBool(x)
	case int32:
		return avmvalue.NewInt32(x)
	case uint32:
		return avmvalue.NewUint32(x)
	case float64:
		return avmvalue.NewFloat64(x)
	case string:
		return avmvalue.NewString(x)
	case nil:
		return avmvalue.Null
	default:
		return avmvalue.NewObjectRef(v)
	}
}

// fromAny unboxes Any into D. The zero value of D decides which branch
// runs; for any D not matched by a primitive/Any/Object case, D is treated
// as a reference type: null passes through as the zero value, a present
// object reference is type-asserted (raising *CastError on mismatch), and
// a non-object, non-null source raises *CastError too.
func fromAny[D any](a avmvalue.Any) (D, error) {
	var zero D
	switch any(zero).(type) {
	case avmvalue.Any:
		return any(a).(D), nil
	case avmvalue.Object:
		o, ok := avmvalue.ToObject(a)
		if !ok {
			return zero, &CastError{From: "undefined", To: "Object"}
		}
		return any(o).(D), nil
	case bool:
		return any(a.AsBool()).(D), nil
	case int32:
		return any(a.AsInt32()).(D), nil
	case uint32:
		return any(a.AsUint32()).(D), nil
	case float64:
		return any(a.AsFloat64()).(D), nil
	case string:
		return any(a.AsString()).(D), nil
	default:
		if a.IsNull() {
			return zero, nil
		}
		ref, ok := a.Ref()
		if !ok {
			return zero, &CastError{From: a.Kind().String(), To: reflect.TypeOf(zero).String()}
		}
		casted, ok := ref.(D)
		if !ok {
			return zero, &CastError{From: a.Kind().String(), To: reflect.TypeOf(zero).String()}
		}
		return casted, nil
	}
}

// Invalid returns a converter that raises *CastError on every non-null
// invocation — the explicit "invalid" converter §4.4 calls out for pairs
// that have no sensible bridge (e.g. bool -> an unrelated reference type).
func Invalid[S, D any](fromName, toName string) Converter[S, D] {
	return converterFunc[S, D]{fn: func(S) (D, error) {
		var zero D
		return zero, &CastError{From: fromName, To: toName}
	}}
}

// InvalidExceptNull is Invalid but lets a null source through as D's zero
// value, matching §4.4's "invalid-except-null" variant for reference
// types.
func InvalidExceptNull[D any](fromName, toName string) Converter[avmvalue.Any, D] {
	return converterFunc[avmvalue.Any, D]{fn: func(a avmvalue.Any) (D, error) {
		var zero D
		if a.IsNull() {
			return zero, nil
		}
		return zero, &CastError{From: fromName, To: toName}
	}}
}
