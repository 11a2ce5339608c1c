// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// valueOrigin discriminates how a Value came to exist, per spec.md §3: it
// is either the result of an instruction, a block parameter, or — once
// SSA construction has rewritten it — an alias standing in for another
// Value.
type valueOrigin uint8

const (
	originResult valueOrigin = iota
	originParam
	originAlias
)

// valueData is the DFG's per-Value record. Exactly one of the "result"
// and "param" field groups is meaningful, selected by origin; aliasTo is
// only meaningful when origin == originAlias.
type valueData struct {
	origin valueOrigin
	typ    Type

	// origin == originResult
	defInst   Inst
	resultIdx int

	// origin == originParam
	defBlock Block
	paramIdx int
	removed  bool // DFG.RemoveBlockParam was called on this value

	// origin == originAlias
	aliasTo Value
}
