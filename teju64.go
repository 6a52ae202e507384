// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tejú Jaguá digit generation for float64.
//
// For a finite nonzero value m * 2**e the decimal values that round back
// to it form the interval between (2m-1) * 2**(e-1) and (2m+1) * 2**(e-1),
// with the endpoints included only when the value wins the tie against its
// neighbor under round-to-even. When m is exactly a power of two the lower
// neighbor is closer and the interval endpoints differ (the "uncentered"
// case). Scaling the endpoints by 10**-f with the precomputed fixed-point
// multipliers turns the shortest-decimal search into exact uint64
// comparisons; no arbitrary precision arithmetic is needed.
//
// See Neri and Schneider, "Euclidean affine functions and their
// application to calendar algorithms" and the teju_jagua reference
// implementation for the correctness proof of the multiplier widths.

package teju

import "math/bits"

// A uint128 is a 128-bit uint.
type uint128 struct {
	hi uint64
	lo uint64
}

// mult64 returns the scaled power of ten for decimal exponent e10.
// An out-of-range exponent cannot be produced by decompose64; it means a
// defect in the table derivation, so abort rather than format wrongly.
func mult64(e10 int32) uint128 {
	if e10 < mult64MinExp10 || e10 > mult64MaxExp10 {
		panic("teju: multiplier exponent out of range")
	}
	return mult64Tab[e10-mult64MinExp10]
}

// mshift64 returns a * m / 2**128, where m = m.hi * 2**64 + m.lo.
func mshift64(a uint64, m uint128) uint64 {
	hi, lo := bits.Mul64(a, m.hi)
	h2, _ := bits.Mul64(a, m.lo)
	_, carry := bits.Add64(lo, h2, 0)
	return hi + carry
}

// mshift64Pow2 returns mshift64(2**k, m) without materializing 2**k.
func mshift64Pow2(k uint32, m uint128) uint64 {
	s := int32(k) - 64
	if s <= 0 {
		return m.hi >> uint(-s)
	}
	return m.hi<<uint(s) | m.lo>>uint(64-s)
}

// isTie64 reports whether d.mant * 10**d.exp is an exact representation
// boundary, i.e. whether d.mant is divisible by 5**d.exp.
func isTie64(d decimal64) bool {
	return d.exp >= 0 && divisiblePow5x64(d.mant, d.exp)
}

// isTieUncentered64 is the power-of-two-boundary variant of isTie64.
func isTieUncentered64(d decimal64) bool {
	return d.mant%5 == 0 && d.exp >= 0 && divisiblePow5x64(d.mant, d.exp)
}

// removeTrailingZeros64 divides d.mant by 10 while it remains exact,
// bumping d.exp to match. The quotient-by-inverse trick is from the
// teju_jagua reference: rotating m * inv5 right by one maps multiples of
// ten, and only those, below bound10.
func removeTrailingZeros64(d decimal64) decimal64 {
	const (
		inv5    = 0xcccccccccccccccd
		bound10 = maxUint64/10 + 1
	)
	for {
		q := bits.RotateLeft64(d.mant*inv5, -1)
		if q >= bound10 {
			return d
		}
		d.exp++
		d.mant = q
	}
}

// tejuJagua64 finds the decimal representation of b with the fewest
// significant digits that rounds back to b, breaking ties to even.
// b must be finite and nonzero.
func tejuJagua64(b binary64) decimal64 {
	// Integers up to 2**53 are exact; emit them directly.
	if e := -b.exp; 0 <= e && e < mantBits64 && lsb(b.mant, uint32(e)) == 0 {
		return removeTrailingZeros64(decimal64{b.mant >> uint32(e), 0})
	}

	f := exp10Pow2(b.exp)
	r := exp10Pow2Residual(b.exp)
	mult := mult64(f)

	if b.mant != maxMant64 || b.exp == minExp64 {
		// Centered: both neighbors are half an ulp away.
		ma := (2*b.mant - 1) << r
		mb := (2*b.mant + 1) << r
		a := mshift64(ma, mult)
		bb := mshift64(mb, mult)

		q := bb / 10
		s := q * 10
		if a < s {
			if s < bb || isEven(b.mant) || !isTie64(decimal64{mb, f}) {
				return removeTrailingZeros64(decimal64{q, f + 1})
			}
		} else if s == a && isEven(b.mant) && isTie64(decimal64{ma, f}) {
			return removeTrailingZeros64(decimal64{q, f + 1})
		} else if !isEven(a + bb) {
			return decimal64{(a+bb)/2 + 1, f}
		}

		mc := (4 * b.mant) << r
		c2 := mshift64(mc, mult)
		c := c2 / 2
		roundUp := !(isEven(c2) || isEven(c) && isTie64(decimal64{c2, -f}))
		return decimal64{c + b2u[uint64](roundUp), f}
	}

	// Uncentered: mant is a power of two, the lower neighbor is only a
	// quarter ulp away.
	ma := (4*maxMant64 - 1) << r
	mb := (2*maxMant64 + 1) << r
	a := mshift64(ma, mult) / 2
	bb := mshift64(mb, mult)

	if a < bb {
		q := bb / 10
		s := q * 10
		if a < s {
			return removeTrailingZeros64(decimal64{q, f + 1})
		} else if s == a && isTieUncentered64(decimal64{ma, f}) {
			return removeTrailingZeros64(decimal64{q, f + 1})
		} else if !isEven(a + bb) {
			return decimal64{(a+bb)/2 + 1, f}
		}

		c2 := mshift64Pow2(mantBits64+r+1, mult)
		c := c2 / 2
		roundUp := c == a && !isTieUncentered64(decimal64{ma, f}) ||
			!(isEven(c2) || isEven(c) && isTie64(decimal64{c2, -f}))
		return decimal64{c + b2u[uint64](roundUp), f}
	} else if isTieUncentered64(decimal64{ma, f}) {
		return removeTrailingZeros64(decimal64{a, f})
	}

	mc := (40 * maxMant64) << r
	c2 := mshift64(mc, mult)
	c := c2 / 2
	roundUp := !(isEven(c2) || isEven(c) && isTie64(decimal64{c2, -f}))
	return decimal64{c + b2u[uint64](roundUp), f - 1}
}
