package avmjson

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/sjson"

	"github.com/avm2rt/avm2core/internal/avmnumber"
	"github.com/avm2rt/avm2core/internal/avmvalue"
)

// Encode renders v as JSON text. Undefined and non-finite floats (NaN,
// +/-Infinity) have no JSON representation and encode as null, the same
// collapse the host applies when a value reaches the wire.
func Encode(v avmvalue.Any) (string, error) {
	return encodeAny(v)
}

func encodeAny(v avmvalue.Any) (string, error) {
	switch v.Kind() {
	case avmvalue.KindUndefined, avmvalue.KindNull:
		return "null", nil
	case avmvalue.KindBool:
		if v.AsBool() {
			return "true", nil
		}
		return "false", nil
	case avmvalue.KindInt32:
		return strconv.FormatInt(int64(v.AsInt32()), 10), nil
	case avmvalue.KindUint32:
		return strconv.FormatUint(uint64(v.AsUint32()), 10), nil
	case avmvalue.KindFloat64:
		f := v.AsFloat64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "null", nil
		}
		return avmnumber.FormatFloat(f), nil
	case avmvalue.KindString:
		return quoteJSONString(v.AsString()), nil
	case avmvalue.KindObject:
		ref, _ := v.Ref()
		switch obj := ref.(type) {
		case *Object:
			return encodeObject(obj)
		case *Array:
			return encodeArray(obj)
		default:
			return quoteJSONString(v.AsString()), nil
		}
	default:
		return "null", nil
	}
}

func encodeObject(obj *Object) (string, error) {
	raw := "{}"
	for _, key := range obj.Keys {
		val, _ := obj.Get(key)
		childRaw, err := encodeAny(val)
		if err != nil {
			return "", err
		}
		raw, err = sjson.SetRaw(raw, escapePathKey(key), childRaw)
		if err != nil {
			return "", err
		}
	}
	return raw, nil
}

func encodeArray(arr *Array) (string, error) {
	raw := "[]"
	for _, item := range arr.Items {
		childRaw, err := encodeAny(item)
		if err != nil {
			return "", err
		}
		raw, err = sjson.SetRaw(raw, "-1", childRaw)
		if err != nil {
			return "", err
		}
	}
	return raw, nil
}

// escapePathKey backslash-escapes the characters sjson's path syntax
// treats specially so an ordinary field name never gets parsed as a
// wildcard or nested path.
func escapePathKey(key string) string {
	if !strings.ContainsAny(key, ".*?\\") {
		return key
	}
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func quoteJSONString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(`\u`)
				const hex = "0123456789abcdef"
				b.WriteByte(hex[(r>>12)&0xf])
				b.WriteByte(hex[(r>>8)&0xf])
				b.WriteByte(hex[(r>>4)&0xf])
				b.WriteByte(hex[r&0xf])
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
