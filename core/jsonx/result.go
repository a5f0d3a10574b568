// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package jsonx

import "github.com/valyala/fastjson"

// Result is the outcome of a single ParseSmart attempt. Exactly one of
// Value or Err is set. Results are created fresh per attempt and never
// mutated afterwards.
type Result struct {
	Value *fastjson.Value
	Err   error
}

// Ok reports whether the attempt produced a value.
func (r Result) Ok() bool { return r.Err == nil }
