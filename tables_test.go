// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teju

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// multRef recomputes ceil(2**(e0-1+2*bits) / 10**f) the way cmd/mktables
// does, where e0 is the smallest binary exponent e with exp10Pow2(e) == f.
func multRef(f int32, bits uint) *big.Int {
	e0 := int32(int64(f) * 217706 >> 16) // ≈ f*log2(10), may be a few low
	for exp10Pow2(e0-1) == f {
		e0--
	}
	for exp10Pow2(e0) != f {
		e0++
	}
	num := big.NewInt(1)
	den := big.NewInt(1)
	if e := int(e0) - 1 + 2*int(bits); e >= 0 {
		num.Lsh(num, uint(e))
	} else {
		den.Lsh(den, uint(-e))
	}
	ten := new(big.Int)
	if f >= 0 {
		den.Mul(den, ten.Exp(big.NewInt(10), big.NewInt(int64(f)), nil))
	} else {
		num.Mul(num, ten.Exp(big.NewInt(10), big.NewInt(int64(-f)), nil))
	}
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

func TestMult64Tab(t *testing.T) {
	require.Equal(t, int32(mult64MinExp10), exp10Pow2(minExp64))
	require.Equal(t, int32(mult64MaxExp10), exp10Pow2(maxMantExp64()))
	for f := int32(mult64MinExp10); f <= mult64MaxExp10; f++ {
		want := multRef(f, 64)
		got := mult64(f)
		hi := new(big.Int).Rsh(want, 64).Uint64()
		lo := new(big.Int).And(want, new(big.Int).SetUint64(maxUint64)).Uint64()
		require.Equal(t, uint128{hi, lo}, got, "10**%d", f)
	}
	require.Panics(t, func() { mult64(mult64MinExp10 - 1) })
	require.Panics(t, func() { mult64(mult64MaxExp10 + 1) })
}

func TestMult32Tab(t *testing.T) {
	require.Equal(t, int32(mult32MinExp10), exp10Pow2(minExp32))
	require.Equal(t, int32(mult32MaxExp10), exp10Pow2(maxMantExp32()))
	for f := int32(mult32MinExp10); f <= mult32MaxExp10; f++ {
		require.Equal(t, multRef(f, 32).Uint64(), mult32(f), "10**%d", f)
	}
	require.Panics(t, func() { mult32(mult32MinExp10 - 1) })
	require.Panics(t, func() { mult32(mult32MaxExp10 + 1) })
}

// Largest binary exponent a finite value can decompose to.
func maxMantExp64() int32 {
	return int32(1<<expBits64-2) - 1 + minExp64
}

func maxMantExp32() int32 {
	return int32(1<<expBits32-2) - 1 + minExp32
}

// The generator's table indices are exactly the exponents decompose can
// produce, shifted by exp10Pow2.
func TestTableCoverage(t *testing.T) {
	for e := int32(minExp64); e <= maxMantExp64(); e++ {
		f := exp10Pow2(e)
		require.GreaterOrEqual(t, f, int32(mult64MinExp10), "e=%d", e)
		require.LessOrEqual(t, f, int32(mult64MaxExp10), "e=%d", e)
	}
	for e := int32(minExp32); e <= maxMantExp32(); e++ {
		f := exp10Pow2(e)
		require.GreaterOrEqual(t, f, int32(mult32MinExp10), "e=%d", e)
		require.LessOrEqual(t, f, int32(mult32MaxExp10), "e=%d", e)
	}
}
