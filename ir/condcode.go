// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// IntCC is an integer comparison condition code, per spec.md §6.
type IntCC uint8

const (
	IntEQ  IntCC = iota // ==
	IntNE               // !=
	IntSLT              // signed <
	IntSGE              // signed >=
	IntSGT              // signed >
	IntSLE              // signed <=
	IntULT              // unsigned <
	IntUGE              // unsigned >=
	IntUGT              // unsigned >
	IntULE              // unsigned <=
)

var intCCNames = [...]string{
	IntEQ: "eq", IntNE: "ne", IntSLT: "slt", IntSGE: "sge", IntSGT: "sgt",
	IntSLE: "sle", IntULT: "ult", IntUGE: "uge", IntUGT: "ugt", IntULE: "ule",
}

func (cc IntCC) String() string { return intCCNames[cc] }

// Complement returns the condition that is true exactly when cc is false.
// complement is an involution: cc.Complement().Complement() == cc.
func (cc IntCC) Complement() IntCC {
	switch cc {
	case IntEQ:
		return IntNE
	case IntNE:
		return IntEQ
	case IntSLT:
		return IntSGE
	case IntSGE:
		return IntSLT
	case IntSGT:
		return IntSLE
	case IntSLE:
		return IntSGT
	case IntULT:
		return IntUGE
	case IntUGE:
		return IntULT
	case IntUGT:
		return IntULE
	case IntULE:
		return IntUGT
	}
	panic("unreachable")
}

// SwapArgs returns the condition code that is equivalent to cc when its
// two operands are exchanged. SwapArgs is an involution and commutes with
// Complement.
func (cc IntCC) SwapArgs() IntCC {
	switch cc {
	case IntEQ:
		return IntEQ
	case IntNE:
		return IntNE
	case IntSLT:
		return IntSGT
	case IntSGT:
		return IntSLT
	case IntSGE:
		return IntSLE
	case IntSLE:
		return IntSGE
	case IntULT:
		return IntUGT
	case IntUGT:
		return IntULT
	case IntUGE:
		return IntULE
	case IntULE:
		return IntUGE
	}
	panic("unreachable")
}

// WithoutEqual strips the "or-equal" component of cc, e.g. sge -> sgt. It
// is idempotent and a no-op on codes that carry no equality component.
func (cc IntCC) WithoutEqual() IntCC {
	switch cc {
	case IntSGE:
		return IntSGT
	case IntSLE:
		return IntSLT
	case IntUGE:
		return IntUGT
	case IntULE:
		return IntULT
	default:
		return cc
	}
}

// Unsigned returns the unsigned equivalent of a signed condition code. It
// is idempotent (unsigned codes, eq and ne map to themselves).
func (cc IntCC) Unsigned() IntCC {
	switch cc {
	case IntSLT:
		return IntULT
	case IntSGE:
		return IntUGE
	case IntSGT:
		return IntUGT
	case IntSLE:
		return IntULE
	default:
		return cc
	}
}

// FloatCC is a floating-point comparison condition code, per spec.md §6.
// The "ordered"/"unordered" split reflects IEEE 754's NaN semantics: an
// "ordered" comparison is false whenever either operand is NaN, an
// "unordered" one is true in that case.
type FloatCC uint8

const (
	FloatOrd FloatCC = iota // ordered (no NaN operand)
	FloatUno                // unordered (either operand NaN)
	FloatEQ
	FloatNE
	FloatOne // ordered and !=
	FloatUeq // unordered or ==
	FloatLT
	FloatLE
	FloatGT
	FloatGE
	FloatUlt
	FloatUle
	FloatUgt
	FloatUge
)

var floatCCNames = [...]string{
	FloatOrd: "ord", FloatUno: "uno", FloatEQ: "eq", FloatNE: "ne",
	FloatOne: "one", FloatUeq: "ueq", FloatLT: "lt", FloatLE: "le",
	FloatGT: "gt", FloatGE: "ge", FloatUlt: "ult", FloatUle: "ule",
	FloatUgt: "ugt", FloatUge: "uge",
}

func (cc FloatCC) String() string { return floatCCNames[cc] }

// Complement returns the condition true exactly when cc is false. It is
// an involution and commutes with SwapArgs.
func (cc FloatCC) Complement() FloatCC {
	switch cc {
	case FloatOrd:
		return FloatUno
	case FloatUno:
		return FloatOrd
	case FloatEQ:
		return FloatNE
	case FloatNE:
		return FloatEQ
	case FloatOne:
		return FloatUeq
	case FloatUeq:
		return FloatOne
	case FloatLT:
		return FloatUge
	case FloatUge:
		return FloatLT
	case FloatLE:
		return FloatUgt
	case FloatUgt:
		return FloatLE
	case FloatGT:
		return FloatUle
	case FloatUle:
		return FloatGT
	case FloatGE:
		return FloatUlt
	case FloatUlt:
		return FloatGE
	}
	panic("unreachable")
}

// SwapArgs returns the condition equivalent to cc with its operands
// exchanged. eq, ne, ueq, one, ord and uno are fixed points: equality and
// orderedness don't care about argument order.
func (cc FloatCC) SwapArgs() FloatCC {
	switch cc {
	case FloatOrd, FloatUno, FloatEQ, FloatNE, FloatOne, FloatUeq:
		return cc
	case FloatLT:
		return FloatGT
	case FloatGT:
		return FloatLT
	case FloatLE:
		return FloatGE
	case FloatGE:
		return FloatLE
	case FloatUlt:
		return FloatUgt
	case FloatUgt:
		return FloatUlt
	case FloatUle:
		return FloatUge
	case FloatUge:
		return FloatUle
	}
	panic("unreachable")
}
