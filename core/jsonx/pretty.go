// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package jsonx

import (
	"github.com/valyala/fastjson"
)

const indentStep = "  "

// Pretty renders v as indented JSON text. Object keys keep their parse
// order and scalar lexemes are re-emitted as parsed, so numbers keep the
// exact form they had in the input.
func Pretty(v *fastjson.Value) string {
	if v == nil {
		return ""
	}
	return string(appendPretty(nil, v, 0))
}

func appendPretty(dst []byte, v *fastjson.Value, depth int) []byte {
	switch v.Type() {
	case fastjson.TypeObject:
		obj := v.GetObject()
		if obj.Len() == 0 {
			return append(dst, "{}"...)
		}
		dst = append(dst, '{', '\n')
		var arena fastjson.Arena
		i := 0
		obj.Visit(func(key []byte, val *fastjson.Value) {
			dst = appendIndent(dst, depth+1)
			dst = arena.NewStringBytes(key).MarshalTo(dst)
			dst = append(dst, ':', ' ')
			dst = appendPretty(dst, val, depth+1)
			if i < obj.Len()-1 {
				dst = append(dst, ',')
			}
			dst = append(dst, '\n')
			i++
		})
		dst = appendIndent(dst, depth)
		return append(dst, '}')

	case fastjson.TypeArray:
		items := v.GetArray()
		if len(items) == 0 {
			return append(dst, "[]"...)
		}
		dst = append(dst, '[', '\n')
		for i, item := range items {
			dst = appendIndent(dst, depth+1)
			dst = appendPretty(dst, item, depth+1)
			if i < len(items)-1 {
				dst = append(dst, ',')
			}
			dst = append(dst, '\n')
		}
		dst = appendIndent(dst, depth)
		return append(dst, ']')

	default:
		return v.MarshalTo(dst)
	}
}

func appendIndent(dst []byte, depth int) []byte {
	for i := 0; i < depth; i++ {
		dst = append(dst, indentStep...)
	}
	return dst
}
