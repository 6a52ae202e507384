// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tejú Jaguá digit generation for float32. Mirrors teju64.go with half
// the word size: the scaled powers of ten are 64-bit fixed-point values
// and all interval arithmetic fits in uint32/uint64.

package teju

import "math/bits"

func mult32(e10 int32) uint64 {
	if e10 < mult32MinExp10 || e10 > mult32MaxExp10 {
		panic("teju: multiplier exponent out of range")
	}
	return mult32Tab[e10-mult32MinExp10]
}

// mshift32 returns a * m / 2**64, where m is a 64-bit fixed-point scaled
// power of ten.
func mshift32(a uint32, m uint64) uint32 {
	hi, lo := uint32(m>>32), uint32(m)
	rhi := uint64(a) * uint64(hi)
	rlo := uint64(a) * uint64(lo)
	return uint32((rhi + rlo>>32) >> 32)
}

func mshift32Pow2(k uint32, m uint64) uint32 {
	s := int32(k) - 32
	if s <= 0 {
		return uint32(m >> uint(64-int32(k)))
	}
	return uint32(m>>32)<<uint(s) | uint32(m)>>uint(32-s)
}

func isTie32(d decimal32) bool {
	return d.exp >= 0 && divisiblePow5x32(d.mant, d.exp)
}

func isTieUncentered32(d decimal32) bool {
	return d.mant%5 == 0 && d.exp >= 0 && divisiblePow5x32(d.mant, d.exp)
}

func removeTrailingZeros32(d decimal32) decimal32 {
	const (
		inv5    = 0xcccccccd
		bound10 = maxUint32/10 + 1
	)
	for {
		q := bits.RotateLeft32(d.mant*inv5, -1)
		if q >= bound10 {
			return d
		}
		d.exp++
		d.mant = q
	}
}

// tejuJagua32 finds the shortest round-tripping decimal for a finite
// nonzero float32. See tejuJagua64 for the structure.
func tejuJagua32(b binary32) decimal32 {
	if e := -b.exp; 0 <= e && e < mantBits32 && lsb(b.mant, uint32(e)) == 0 {
		return removeTrailingZeros32(decimal32{b.mant >> uint32(e), 0})
	}

	f := exp10Pow2(b.exp)
	r := exp10Pow2Residual(b.exp)
	mult := mult32(f)

	if b.mant != maxMant32 || b.exp == minExp32 {
		ma := (2*b.mant - 1) << r
		mb := (2*b.mant + 1) << r
		a := mshift32(ma, mult)
		bb := mshift32(mb, mult)

		q := bb / 10
		s := q * 10
		if a < s {
			if s < bb || isEven(b.mant) || !isTie32(decimal32{mb, f}) {
				return removeTrailingZeros32(decimal32{q, f + 1})
			}
		} else if s == a && isEven(b.mant) && isTie32(decimal32{ma, f}) {
			return removeTrailingZeros32(decimal32{q, f + 1})
		} else if !isEven(a + bb) {
			return decimal32{(a+bb)/2 + 1, f}
		}

		mc := (4 * b.mant) << r
		c2 := mshift32(mc, mult)
		c := c2 / 2
		roundUp := !(isEven(c2) || isEven(c) && isTie32(decimal32{c2, -f}))
		return decimal32{c + b2u[uint32](roundUp), f}
	}

	ma := (4*maxMant32 - 1) << r
	mb := (2*maxMant32 + 1) << r
	a := mshift32(ma, mult) / 2
	bb := mshift32(mb, mult)

	if a < bb {
		q := bb / 10
		s := q * 10
		if a < s {
			return removeTrailingZeros32(decimal32{q, f + 1})
		} else if s == a && isTieUncentered32(decimal32{ma, f}) {
			return removeTrailingZeros32(decimal32{q, f + 1})
		} else if !isEven(a + bb) {
			return decimal32{(a+bb)/2 + 1, f}
		}

		c2 := mshift32Pow2(mantBits32+r+1, mult)
		c := c2 / 2
		roundUp := c == a && !isTieUncentered32(decimal32{ma, f}) ||
			!(isEven(c2) || isEven(c) && isTie32(decimal32{c2, -f}))
		return decimal32{c + b2u[uint32](roundUp), f}
	} else if isTieUncentered32(decimal32{ma, f}) {
		return removeTrailingZeros32(decimal32{a, f})
	}

	mc := (40 * maxMant32) << r
	c2 := mshift32(mc, mult)
	c := c2 / 2
	roundUp := !(isEven(c2) || isEven(c) && isTie32(decimal32{c2, -f}))
	return decimal32{c + b2u[uint32](roundUp), f - 1}
}
