// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// Type is a 32-bit tag identifying a scalar or vector value's element
// kind and lane count, per spec.md §6. The core never interprets a Type
// beyond equality and the predicates below; layout and ABI concerns live
// with the (out of scope) frontend and backend.
type Type uint32

const (
	TypeInvalid Type = iota
	TypeI8
	TypeI16
	TypeI32
	TypeI64
	TypeF32
	TypeF64
	TypeI8x16
	TypeI32x4
	TypeF32x4
	TypeMem // pseudo-type threading memory/store-ordering dependencies
)

var typeNames = map[Type]string{
	TypeInvalid: "invalid",
	TypeI8:      "i8",
	TypeI16:     "i16",
	TypeI32:     "i32",
	TypeI64:     "i64",
	TypeF32:     "f32",
	TypeF64:     "f64",
	TypeI8x16:   "i8x16",
	TypeI32x4:   "i32x4",
	TypeF32x4:   "f32x4",
	TypeMem:     "mem",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "type<?>"
}

func (t Type) Valid() bool { return t != TypeInvalid }

// IsVector reports whether t has more than one lane.
func (t Type) IsVector() bool {
	switch t {
	case TypeI8x16, TypeI32x4, TypeF32x4:
		return true
	default:
		return false
	}
}

// Lanes returns the number of SIMD lanes in t (1 for scalars).
func (t Type) Lanes() int {
	switch t {
	case TypeI8x16:
		return 16
	case TypeI32x4, TypeF32x4:
		return 4
	default:
		return 1
	}
}

// Lane returns the scalar type of one lane of t. For scalar t it is t
// itself.
func (t Type) Lane() Type {
	switch t {
	case TypeI8x16:
		return TypeI8
	case TypeI32x4:
		return TypeI32
	case TypeF32x4:
		return TypeF32
	default:
		return t
	}
}

// VectorToDynamic reports the DynamicType a vector type is the fixed-width
// instantiation of, if this module's dynamic-type table declares one. The
// core only ferries the handle returned here; it does not resolve it.
func (t Type) VectorToDynamic(f *Func) (DynamicType, bool) {
	for i := 0; i < f.dynamicTypes.Len(); i++ {
		dt := DynamicType(i)
		info, ok := f.dynamicTypes.Get(dt)
		if ok && info.BaseVectorType == t {
			return dt, true
		}
	}
	return invalidDynamicType, false
}

// IsFloat reports whether t is a floating-point scalar or vector lane type.
func (t Type) IsFloat() bool {
	switch t.Lane() {
	case TypeF32, TypeF64:
		return true
	default:
		return false
	}
}
