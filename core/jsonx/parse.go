// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package jsonx

import (
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/valyala/fastjson"
)

// ParseSmart turns raw pasted text into a JSON value.
//
// When repair is enabled the text first goes through a best-effort syntax
// repair pass (trailing commas, unquoted keys, single quotes and the like).
// A failing repair keeps the original text and is never surfaced.
//
// The (possibly repaired) text is then parsed strictly as a single document.
// If that fails, the text is reinterpreted as JSON Lines: one strict
// document per non-blank line, returned as an array of the per-line values
// in input order. If any line fails, the JSON Lines attempt is abandoned and
// the whole-document error is returned, not a per-line one.
//
// ParseSmart is a pure function of its two inputs.
func ParseSmart(text string, repair bool) Result {
	if repair {
		if fixed, err := jsonrepair.JSONRepair(text); err == nil {
			text = fixed
		}
	}

	v, docErr := fastjson.Parse(text)
	if docErr == nil {
		return Result{Value: v}
	}

	if arr, ok := parseLines(text); ok {
		return Result{Value: arr}
	}
	return Result{Err: docErr}
}

// parseLines attempts the JSON Lines interpretation. Every non-blank line
// must be a standalone strict document; once each line validates, the lines
// are parsed together as one array so the per-line values share a backing
// buffer.
func parseLines(text string) (*fastjson.Value, bool) {
	lines := SplitLines(text)
	if len(lines) == 0 {
		return nil, false
	}
	for _, line := range lines {
		if fastjson.Validate(line) != nil {
			return nil, false
		}
	}
	arr, err := fastjson.Parse("[" + strings.Join(lines, ",") + "]")
	if err != nil {
		return nil, false
	}
	return arr, true
}
