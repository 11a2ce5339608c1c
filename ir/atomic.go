// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "fmt"

// AtomicRmwOp names the eleven read-modify-write operations an OpAtomicRmw
// instruction may carry, per spec.md §6.
type AtomicRmwOp uint8

const (
	AtomicAdd AtomicRmwOp = iota
	AtomicSub
	AtomicAnd
	AtomicNand
	AtomicOr
	AtomicXor
	AtomicXchg
	AtomicUMin
	AtomicUMax
	AtomicSMin
	AtomicSMax
)

var atomicRmwNames = [...]string{
	AtomicAdd: "add", AtomicSub: "sub", AtomicAnd: "and", AtomicNand: "nand",
	AtomicOr: "or", AtomicXor: "xor", AtomicXchg: "xchg", AtomicUMin: "umin",
	AtomicUMax: "umax", AtomicSMin: "smin", AtomicSMax: "smax",
}

func (op AtomicRmwOp) String() string { return atomicRmwNames[op] }

var atomicRmwByName = func() map[string]AtomicRmwOp {
	m := make(map[string]AtomicRmwOp, len(atomicRmwNames))
	for op, name := range atomicRmwNames {
		m[name] = AtomicRmwOp(op)
	}
	return m
}()

// ParseAtomicRmwOp is the left inverse of String: for every op,
// ParseAtomicRmwOp(op.String()) == op.
func ParseAtomicRmwOp(s string) (AtomicRmwOp, error) {
	op, ok := atomicRmwByName[s]
	if !ok {
		return 0, fmt.Errorf("ir: unknown atomic rmw op %q", s)
	}
	return op, nil
}
