// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func allIntCCs() []IntCC {
	return []IntCC{IntEQ, IntNE, IntSLT, IntSGE, IntSGT, IntSLE, IntULT, IntUGE, IntUGT, IntULE}
}

func TestIntCCComplementInvolution(t *testing.T) {
	for _, cc := range allIntCCs() {
		require.Equal(t, cc, cc.Complement().Complement(), "cc=%s", cc)
	}
}

func TestIntCCSwapArgsInvolution(t *testing.T) {
	for _, cc := range allIntCCs() {
		require.Equal(t, cc, cc.SwapArgs().SwapArgs(), "cc=%s", cc)
	}
}

func TestIntCCSwapCommutesWithComplement(t *testing.T) {
	for _, cc := range allIntCCs() {
		require.Equal(t, cc.Complement().SwapArgs(), cc.SwapArgs().Complement(), "cc=%s", cc)
	}
}

func TestIntCCWithoutEqualIdempotent(t *testing.T) {
	for _, cc := range allIntCCs() {
		once := cc.WithoutEqual()
		require.Equal(t, once, once.WithoutEqual(), "cc=%s", cc)
	}
}

func TestIntCCUnsignedIdempotent(t *testing.T) {
	for _, cc := range allIntCCs() {
		once := cc.Unsigned()
		require.Equal(t, once, once.Unsigned(), "cc=%s", cc)
	}
}

func allFloatCCs() []FloatCC {
	return []FloatCC{
		FloatOrd, FloatUno, FloatEQ, FloatNE, FloatOne, FloatUeq,
		FloatLT, FloatLE, FloatGT, FloatGE, FloatUlt, FloatUle, FloatUgt, FloatUge,
	}
}

func TestFloatCCComplementInvolution(t *testing.T) {
	for _, cc := range allFloatCCs() {
		require.Equal(t, cc, cc.Complement().Complement(), "cc=%s", cc)
	}
}

func TestFloatCCSwapArgsInvolution(t *testing.T) {
	for _, cc := range allFloatCCs() {
		require.Equal(t, cc, cc.SwapArgs().SwapArgs(), "cc=%s", cc)
	}
}

func TestFloatCCSwapFixedPoints(t *testing.T) {
	for _, cc := range []FloatCC{FloatOrd, FloatUno, FloatEQ, FloatNE, FloatOne, FloatUeq} {
		require.Equal(t, cc, cc.SwapArgs(), "cc=%s", cc)
	}
}
