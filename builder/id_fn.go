// SPDX-License-Identifier: MIT
// Package: valveplan/builder
//
// id_fn.go - vertex ID schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its ID.
type IDFn func(idx int) string

// DefaultIDFn returns decimal IDs: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// CaveIDFn returns two-letter IDs "AA", "AB", ..., "ZZ" for indices below
// 676 and falls back to "AA676"-style suffixes beyond. Index 0 is "AA",
// the conventional start.
func CaveIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("CaveIDFn: idx must be ≥ 0, got %d", idx))
	}
	if idx >= 26*26 {
		return "AA" + strconv.Itoa(idx)
	}

	return string([]byte{byte('A' + idx/26), byte('A' + idx%26)})
}

// SymbolNumberIDFn returns prefix+decimal IDs.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// WithDefaultIDs selects DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbNumb selects SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }
