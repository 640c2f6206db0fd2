package avm2

import "github.com/avm2rt/avm2core/internal/avmjson"

// JSONObject and JSONArray box into Any via NewObjectRef; EncodeJSON and
// DecodeJSON move between that boxed form and JSON text.
type JSONObject = avmjson.Object
type JSONArray = avmjson.Array

func NewJSONObject() *JSONObject { return avmjson.NewObject() }
func NewJSONArray() *JSONArray   { return avmjson.NewArray() }

func EncodeJSON(v Any) (string, error)    { return avmjson.Encode(v) }
func DecodeJSON(text string) (Any, error) { return avmjson.Decode(text) }
