// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teju

// IEEE-754 field layout. mantBits counts the implicit leading bit, so the
// decomposed mantissa of a normal value satisfies maxMant <= mant < 2*maxMant.
// minExp folds the fixed-point shift of the mantissa into the bias: a finite
// value is mant * 2**exp with exp >= minExp.
const (
	mantBits64 = 53
	expBits64  = 11
	minExp64   = -1074
	maxMant64  = uint64(1) << (mantBits64 - 1)
	expMask64  = uint64(1)<<(expBits64+mantBits64-1) - uint64(1)<<(mantBits64-1)

	mantBits32 = 24
	expBits32  = 8
	minExp32   = -149
	maxMant32  = uint32(1) << (mantBits32 - 1)
	expMask32  = uint32(1)<<(expBits32+mantBits32-1) - uint32(1)<<(mantBits32-1)
)

// binary64 is the absolute value of a finite float64, decomposed so that
// |v| = mant * 2**exp. Subnormals have mant < maxMant64 and exp == minExp64.
type binary64 struct {
	mant uint64
	exp  int32
}

// decimal64 is a decimal representation mant * 10**exp of the absolute
// value of a finite float64.
type decimal64 struct {
	mant uint64
	exp  int32
}

// decompose64 splits the bit pattern of a finite float64 into mantissa and
// exponent. bits must have the sign bit cleared.
func decompose64(bits uint64) binary64 {
	mant := bits & (maxMant64 - 1)
	exp := int32(bits >> (mantBits64 - 1))
	if exp != 0 {
		exp--
		mant |= maxMant64
	}
	return binary64{mant, exp + minExp64}
}

type binary32 struct {
	mant uint32
	exp  int32
}

type decimal32 struct {
	mant uint32
	exp  int32
}

func decompose32(bits uint32) binary32 {
	mant := bits & (maxMant32 - 1)
	exp := int32(bits >> (mantBits32 - 1))
	if exp != 0 {
		exp--
		mant |= maxMant32
	}
	return binary32{mant, exp + minExp32}
}
