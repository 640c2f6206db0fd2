package avmjson

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/avm2rt/avm2core/internal/avmvalue"
)

// Decode parses JSON text into the Any universe. Objects and arrays box as
// *Object/*Array object references; scalars map onto the matching Any kind
// directly. JSON has no undefined, so there is no route to KindUndefined
// here — only Encode produces that asymmetry, on the way out.
func Decode(text string) (avmvalue.Any, error) {
	if !gjson.Valid(text) {
		return avmvalue.Undefined, fmt.Errorf("avmjson: invalid JSON text")
	}
	return decodeResult(gjson.Parse(text)), nil
}

func decodeResult(r gjson.Result) avmvalue.Any {
	switch r.Type {
	case gjson.Null:
		return avmvalue.Null
	case gjson.False:
		return avmvalue.NewBool(false)
	case gjson.True:
		return avmvalue.NewBool(true)
	case gjson.Number:
		return avmvalue.NewFloat64(r.Num)
	case gjson.String:
		return avmvalue.NewString(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			arr := NewArray()
			r.ForEach(func(_, v gjson.Result) bool {
				arr.Append(decodeResult(v))
				return true
			})
			return avmvalue.NewObjectRef(arr)
		}
		obj := NewObject()
		r.ForEach(func(k, v gjson.Result) bool {
			obj.Set(k.String(), decodeResult(v))
			return true
		})
		return avmvalue.NewObjectRef(obj)
	default:
		return avmvalue.Undefined
	}
}
