// Package avmjson boxes the Any universe into JSON text and back, the
// JSON counterpart to avmxml's E4X tree for the runtime's other common
// interchange format.
//
// No teacher analog exists for JSON-by-path editing; the concern mirrors
// internal/interp/runtime/json_helpers.go's JSONValueToValue/ValueToJSONValue
// pair, built against github.com/tidwall/gjson and github.com/tidwall/sjson
// instead of a hand-rolled jsonvalue tree.
package avmjson

import "github.com/avm2rt/avm2core/internal/avmvalue"

// Object is an insertion-ordered string-keyed JSON object, boxed into
// avmvalue.Any via avmvalue.NewObjectRef so it flows through the same Any
// universe as every other dynamic value.
type Object struct {
	Keys   []string
	fields map[string]avmvalue.Any
}

func NewObject() *Object {
	return &Object{fields: make(map[string]avmvalue.Any)}
}

func (o *Object) Get(key string) (avmvalue.Any, bool) {
	v, ok := o.fields[key]
	return v, ok
}

func (o *Object) Set(key string, v avmvalue.Any) {
	if o.fields == nil {
		o.fields = make(map[string]avmvalue.Any)
	}
	if _, exists := o.fields[key]; !exists {
		o.Keys = append(o.Keys, key)
	}
	o.fields[key] = v
}

// Array is a JSON array boxed the same way as Object.
type Array struct {
	Items []avmvalue.Any
}

func NewArray() *Array {
	return &Array{}
}

func (a *Array) Append(v avmvalue.Any) {
	a.Items = append(a.Items, v)
}
