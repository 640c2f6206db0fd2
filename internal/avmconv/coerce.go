package avmconv

import "github.com/avm2rt/avm2core/internal/avmvalue"

// CoerceToNative converts an Any argument into the plain Go value a native
// stub body expects, dispatched at runtime by the trait's declared type
// name rather than by a Go type parameter — avmstub only learns the
// parameter's type as a string pulled from trait metadata, so this is the
// dynamic-dispatch counterpart to Get[S, D](). An empty or unrecognized
// typeName passes the value through as avmvalue.Any, covering "*" params
// and rest-parameter elements.
func CoerceToNative(value avmvalue.Any, typeName string) (any, error) {
	switch typeName {
	case "bool", "Boolean":
		return value.AsBool(), nil
	case "int32", "int":
		return value.AsInt32(), nil
	case "uint32", "uint":
		return value.AsUint32(), nil
	case "float64", "Number":
		return value.AsFloat64(), nil
	case "string", "String":
		return value.AsString(), nil
	case "Object":
		o, ok := avmvalue.ToObject(value)
		if !ok {
			return avmvalue.Object{}, &CastError{From: value.Kind().String(), To: "Object"}
		}
		return o, nil
	case "", "Any", "*":
		return value, nil
	default:
		if value.IsNull() {
			return nil, nil
		}
		ref, ok := value.Ref()
		if !ok {
			return nil, &CastError{From: value.Kind().String(), To: typeName}
		}
		return ref, nil
	}
}

// CoerceFromNative boxes a native stub result back into Any, dispatched by
// the trait's declared return-type name. A nil raw value with a reference
// typeName becomes Null, not Undefined, matching §4.4's "null passes
// through" rule for reference converters.
func CoerceFromNative(raw any, typeName string) avmvalue.Any {
	switch typeName {
	case "bool", "Boolean":
		if b, ok := raw.(bool); ok {
			return avmvalue.NewBool(b)
		}
	case "int32", "int":
		if i, ok := raw.(int32); ok {
			return avmvalue.NewInt32(i)
		}
	case "uint32", "uint":
		if u, ok := raw.(uint32); ok {
			return avmvalue.NewUint32(u)
		}
	case "float64", "Number":
		if f, ok := raw.(float64); ok {
			return avmvalue.NewFloat64(f)
		}
	case "string", "String":
		if s, ok := raw.(string); ok {
			return avmvalue.NewString(s)
		}
	case "Any", "*":
		if a, ok := raw.(avmvalue.Any); ok {
			return a
		}
	case "Object":
		if o, ok := raw.(avmvalue.Object); ok {
			return o.Any()
		}
	}
	if raw == nil {
		return avmvalue.Null
	}
	if a, ok := raw.(avmvalue.Any); ok {
		return a
	}
	return avmvalue.NewObjectRef(raw)
}
