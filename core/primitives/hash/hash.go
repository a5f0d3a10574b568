// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package hash

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// Fmt renders a hash as a fixed-width hex string for logs.
func Fmt(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

// Compute returns a stable hash of v. The workbench hashes the pair of
// editor text and repair flag to skip re-parsing unchanged content.
func Compute(v any) (uint64, error) {
	return hashstructure.Hash(v, hashstructure.FormatV2, nil)
}
