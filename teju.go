// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package teju converts binary floating-point values to the shortest
// decimal strings that parse back to the same values, using the
// Tejú Jaguá algorithm.
//
// The formatters never allocate: each call writes into a caller-owned
// fixed-size [Buffer] (or [Buffer32]) and returns a string view of the
// bytes written. The view is only valid until the next call on the same
// buffer.
//
// Output spellings are fixed and part of the contract:
//
//	Format(1.0)      = "1"
//	Format(1.234)    = "1.234"
//	Format(1e30)     = "1e30"
//	Format(0.0)      = "0"
//	Format(-0.0)     = "-0"
//	Format(Inf)      = "inf"
//	Format(-Inf)     = "-inf"
//	Format(NaN)      = "NaN"
//
// Scientific notation spells a zero exponent as "e0" and carries no '+'
// sign or leading zeros in the exponent.
package teju

import (
	"math"
	"unsafe"
)

const (
	strInf        = "inf"
	strNegInf     = "-inf"
	strNaN        = "NaN"
	strZero       = "0"
	strNegZero    = "-0"
	strZeroSci    = "0e0"
	strNegZeroSci = "-0e0"
)

// Buffer holds the output of one float64 formatting call.
// The zero value is ready to use. Reusing a Buffer across calls is fine;
// sharing one between concurrent calls is not.
type Buffer struct {
	b [bufLen64]byte
}

// bufLen64 covers the worst case over all three notations: forced-decimal
// output of the smallest subnormal (sign, "0.", 323 zeros, digits).
const bufLen64 = 352

// Format returns the shortest decimal representation of f, in plain
// decimal notation when the magnitude is moderate and scientific
// notation otherwise.
func (b *Buffer) Format(f float64) string {
	bits := math.Float64bits(f)
	neg, d, s := prepare64(bits, strZero, strNegZero)
	if s != "" {
		return s
	}
	return b.view(fmtAuto(b.b[:], neg, d.mant, d.exp))
}

// FormatDecimal is like Format but always uses plain decimal notation,
// however long the result.
func (b *Buffer) FormatDecimal(f float64) string {
	bits := math.Float64bits(f)
	neg, d, s := prepare64(bits, strZero, strNegZero)
	if s != "" {
		return s
	}
	return b.view(fmtDec(b.b[:], neg, d.mant, d.exp))
}

// FormatScientific is like Format but always uses scientific notation.
func (b *Buffer) FormatScientific(f float64) string {
	bits := math.Float64bits(f)
	neg, d, s := prepare64(bits, strZeroSci, strNegZeroSci)
	if s != "" {
		return s
	}
	return b.view(fmtSci(b.b[:], neg, d.mant, d.exp))
}

func (b *Buffer) view(n int) string {
	return unsafe.String(&b.b[0], n)
}

// prepare64 classifies the bit pattern and, for finite nonzero values,
// runs the digit generator. For zeros and non-finite values it returns
// the fixed token instead.
func prepare64(bits uint64, zero, negZero string) (neg bool, d decimal64, special string) {
	neg = bits>>63 != 0
	abs := bits &^ (uint64(1) << 63)
	switch {
	case abs == 0:
		if neg {
			return neg, d, negZero
		}
		return neg, d, zero
	case abs >= expMask64:
		if abs > expMask64 {
			return neg, d, strNaN
		}
		if neg {
			return neg, d, strNegInf
		}
		return neg, d, strInf
	}
	return neg, tejuJagua64(decompose64(abs)), ""
}

// Buffer32 holds the output of one float32 formatting call.
type Buffer32 struct {
	b [bufLen32]byte
}

// bufLen32 covers forced-decimal output of the smallest float32
// subnormal (sign, "0.", 44 zeros, digits).
const bufLen32 = 64

// Format returns the shortest decimal representation of f, choosing
// between plain decimal and scientific notation like [Buffer.Format].
func (b *Buffer32) Format(f float32) string {
	bits := math.Float32bits(f)
	neg, d, s := prepare32(bits, strZero, strNegZero)
	if s != "" {
		return s
	}
	return b.view(fmtAuto(b.b[:], neg, uint64(d.mant), d.exp))
}

// FormatDecimal is like Format but always uses plain decimal notation.
func (b *Buffer32) FormatDecimal(f float32) string {
	bits := math.Float32bits(f)
	neg, d, s := prepare32(bits, strZero, strNegZero)
	if s != "" {
		return s
	}
	return b.view(fmtDec(b.b[:], neg, uint64(d.mant), d.exp))
}

// FormatScientific is like Format but always uses scientific notation.
func (b *Buffer32) FormatScientific(f float32) string {
	bits := math.Float32bits(f)
	neg, d, s := prepare32(bits, strZeroSci, strNegZeroSci)
	if s != "" {
		return s
	}
	return b.view(fmtSci(b.b[:], neg, uint64(d.mant), d.exp))
}

func (b *Buffer32) view(n int) string {
	return unsafe.String(&b.b[0], n)
}

func prepare32(bits uint32, zero, negZero string) (neg bool, d decimal32, special string) {
	neg = bits>>31 != 0
	abs := bits &^ (uint32(1) << 31)
	switch {
	case abs == 0:
		if neg {
			return neg, d, negZero
		}
		return neg, d, zero
	case abs >= expMask32:
		if abs > expMask32 {
			return neg, d, strNaN
		}
		if neg {
			return neg, d, strNegInf
		}
		return neg, d, strInf
	}
	return neg, tejuJagua32(decompose32(abs)), ""
}

// AppendFloat64 appends the automatic-notation form of f to dst.
func AppendFloat64(dst []byte, f float64) []byte {
	var b Buffer
	return append(dst, b.Format(f)...)
}

// AppendFloat32 appends the automatic-notation form of f to dst.
func AppendFloat32(dst []byte, f float32) []byte {
	var b Buffer32
	return append(dst, b.Format(f)...)
}
