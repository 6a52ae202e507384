// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teju

import (
	"flag"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exhaustive = flag.Bool("exhaustive", false, "check every finite float32 bit pattern")

var format64Tests = []struct {
	f    float64
	auto string
	dec  string
	sci  string
}{
	{1, "1", "1", "1e0"},
	{1.234, "1.234", "1.234", "1.234e0"},
	{123.456, "123.456", "123.456", "1.23456e2"},
	{0.1234, "0.1234", "0.1234", "1.234e-1"},
	{0.001234, "0.001234", "0.001234", "1.234e-3"},
	{1234, "1234", "1234", "1.234e3"},
	{123400, "123400", "123400", "1.234e5"},
	{1234e7, "12340000000", "12340000000", "1.234e10"},
	{1234e12, "1234000000000000", "1234000000000000", "1.234e15"},
	{1234e30, "1.234e33", "1234" + strings.Repeat("0", 30), "1.234e33"},
	{1234e-30, "1.234e-27", "0." + strings.Repeat("0", 26) + "1234", "1.234e-27"},
	{1e30, "1e30", "1" + strings.Repeat("0", 30), "1e30"},
	{1e-6, "1e-6", "0.000001", "1e-6"},
	{1234567890123456, "1234567890123456", "1234567890123456", "1.234567890123456e15"},
	{123456789012345678, "1.2345678901234568e17", "123456789012345680", "1.2345678901234568e17"},
	{123000123000, "123000123000", "123000123000", "1.23000123e11"},
	{math.Pi, "3.141592653589793", "3.141592653589793", "3.141592653589793e0"},
	{math.E, "2.718281828459045", "2.718281828459045", "2.718281828459045e0"},
	{math.Ln2, "0.6931471805599453", "0.6931471805599453", "6.931471805599453e-1"},
	{0.3, "0.3", "0.3", "3e-1"},
	{0.1 + 0.2, "0.30000000000000004", "0.30000000000000004", "3.0000000000000004e-1"},
	{1 << 53, "9007199254740992", "9007199254740992", "9.007199254740992e15"},
	{5e-324, "5e-324", "0." + strings.Repeat("0", 323) + "5", "5e-324"},
	{math.SmallestNonzeroFloat64, "5e-324", "0." + strings.Repeat("0", 323) + "5", "5e-324"},
	{2.2250738585072014e-308, "2.2250738585072014e-308",
		"0." + strings.Repeat("0", 307) + "22250738585072014", "2.2250738585072014e-308"},
	{math.MaxFloat64, "1.7976931348623157e308",
		"17976931348623157" + strings.Repeat("0", 292), "1.7976931348623157e308"},
}

func TestFormat(t *testing.T) {
	var b Buffer
	for _, tt := range format64Tests {
		require.Equal(t, tt.auto, b.Format(tt.f), "Format(%v)", tt.f)
		require.Equal(t, tt.dec, b.FormatDecimal(tt.f), "FormatDecimal(%v)", tt.f)
		require.Equal(t, tt.sci, b.FormatScientific(tt.f), "FormatScientific(%v)", tt.f)

		require.Equal(t, "-"+tt.auto, b.Format(-tt.f), "Format(%v)", -tt.f)
		require.Equal(t, "-"+tt.dec, b.FormatDecimal(-tt.f), "FormatDecimal(%v)", -tt.f)
		require.Equal(t, "-"+tt.sci, b.FormatScientific(-tt.f), "FormatScientific(%v)", -tt.f)
	}
}

var format32Tests = []struct {
	f    float32
	auto string
	dec  string
	sci  string
}{
	{1, "1", "1", "1e0"},
	{1.5, "1.5", "1.5", "1.5e0"},
	{0.25, "0.25", "0.25", "2.5e-1"},
	{0.1, "0.1", "0.1", "1e-1"},
	{123.456, "123.456", "123.456", "1.23456e2"},
	{1 << 23, "8388608", "8388608", "8.388608e6"},
	{1 << 24, "16777216", "16777216", "1.6777216e7"},
	{1e10, "10000000000", "10000000000", "1e10"},
	{6.0221409e23, "6.022141e23", "602214100000000000000000", "6.022141e23"},
	{math.MaxFloat32, "3.4028235e38", "34028235" + strings.Repeat("0", 31), "3.4028235e38"},
	{1.1754944e-38, "1.1754944e-38",
		"0." + strings.Repeat("0", 37) + "11754944", "1.1754944e-38"},
	{1e-45, "1e-45", "0." + strings.Repeat("0", 44) + "1", "1e-45"},
}

func TestFormat32(t *testing.T) {
	var b Buffer32
	for _, tt := range format32Tests {
		require.Equal(t, tt.auto, b.Format(tt.f), "Format(%v)", tt.f)
		require.Equal(t, tt.dec, b.FormatDecimal(tt.f), "FormatDecimal(%v)", tt.f)
		require.Equal(t, tt.sci, b.FormatScientific(tt.f), "FormatScientific(%v)", tt.f)

		require.Equal(t, "-"+tt.auto, b.Format(-tt.f), "Format(%v)", -tt.f)
	}
}

func TestSpecials(t *testing.T) {
	var b Buffer
	assert.Equal(t, "0", b.Format(0))
	assert.Equal(t, "-0", b.Format(math.Copysign(0, -1)))
	assert.Equal(t, "0", b.FormatDecimal(0))
	assert.Equal(t, "0e0", b.FormatScientific(0))
	assert.Equal(t, "-0e0", b.FormatScientific(math.Copysign(0, -1)))
	assert.Equal(t, "inf", b.Format(math.Inf(1)))
	assert.Equal(t, "-inf", b.Format(math.Inf(-1)))
	assert.Equal(t, "NaN", b.Format(math.NaN()))
	assert.Equal(t, "NaN", b.Format(math.Float64frombits(0xfff8000000000001)))
	assert.Equal(t, "inf", b.FormatDecimal(math.Inf(1)))
	assert.Equal(t, "-inf", b.FormatScientific(math.Inf(-1)))

	var b32 Buffer32
	assert.Equal(t, "0", b32.Format(0))
	assert.Equal(t, "-0", b32.Format(float32(math.Copysign(0, -1))))
	assert.Equal(t, "0e0", b32.FormatScientific(0))
	assert.Equal(t, "inf", b32.Format(float32(math.Inf(1))))
	assert.Equal(t, "-inf", b32.Format(float32(math.Inf(-1))))
	assert.Equal(t, "NaN", b32.Format(float32(math.NaN())))
}

// splitDigits reduces a formatted string to its significant digits and the
// exponent of the last digit, so outputs in different notations compare
// equal when they denote the same decimal.
func splitDigits(t *testing.T, s string) (digits string, exp int) {
	t.Helper()
	s = strings.TrimPrefix(s, "-")
	mant, e, hasE := strings.Cut(s, "e")
	if hasE {
		n, err := strconv.Atoi(strings.TrimPrefix(e, "+"))
		require.NoError(t, err, "bad exponent in %q", s)
		exp = n
	}
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		exp -= len(mant) - i - 1
		mant = mant[:i] + mant[i+1:]
	}
	mant = strings.TrimLeft(mant, "0")
	for len(mant) > 0 && mant[len(mant)-1] == '0' {
		mant = mant[:len(mant)-1]
		exp++
	}
	if mant == "" {
		return "0", 0
	}
	return mant, exp
}

// checkFloat64 verifies the full contract for one value: every notation
// parses back to the same bits, and the digits agree with the shortest
// correctly-rounded output of strconv.
func checkFloat64(t *testing.T, f float64) {
	t.Helper()
	var b Buffer
	want := math.Float64bits(f)
	// Each call overwrites the buffer, so clone before collecting.
	for _, s := range []string{
		strings.Clone(b.Format(f)),
		strings.Clone(b.FormatDecimal(f)),
		strings.Clone(b.FormatScientific(f)),
	} {
		g, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, "%q", s)
		if math.Float64bits(g) != want {
			t.Fatalf("%q parses to %x, want %x (%v)", s, math.Float64bits(g), want, f)
		}
	}
	wd, we := splitDigits(t, strconv.FormatFloat(f, 'e', -1, 64))
	gd, ge := splitDigits(t, b.Format(f))
	if gd != wd || ge != we {
		t.Fatalf("Format(%v) = %se%d, strconv shortest = %se%d", f, gd, ge, wd, we)
	}
}

func checkFloat32(t *testing.T, f float32) {
	t.Helper()
	var b Buffer32
	want := math.Float32bits(f)
	for _, s := range []string{
		strings.Clone(b.Format(f)),
		strings.Clone(b.FormatDecimal(f)),
		strings.Clone(b.FormatScientific(f)),
	} {
		g, err := strconv.ParseFloat(s, 32)
		require.NoError(t, err, "%q", s)
		if math.Float32bits(float32(g)) != want {
			t.Fatalf("%q parses to %x, want %x (%v)", s, math.Float32bits(float32(g)), want, f)
		}
	}
	wd, we := splitDigits(t, strconv.FormatFloat(float64(f), 'e', -1, 32))
	gd, ge := splitDigits(t, b.Format(f))
	if gd != wd || ge != we {
		t.Fatalf("Format(%v) = %se%d, strconv shortest = %se%d", f, gd, ge, wd, we)
	}
}

func TestRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for range 200000 {
		bits := r.Uint64()
		if bits&expMask64 == expMask64 {
			continue
		}
		checkFloat64(t, math.Float64frombits(bits))
	}
}

func TestRoundTripRandom32(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for range 200000 {
		bits := uint32(r.Uint64())
		if bits&expMask32 == expMask32 {
			continue
		}
		checkFloat32(t, math.Float32frombits(bits))
	}
}

// TestBoundary sweeps every binary exponent with mantissa patterns around
// the power-of-two boundary, where the rounding interval is asymmetric and
// off-by-one bugs live.
func TestBoundary(t *testing.T) {
	for biased := uint64(0); biased < 2047; biased++ {
		for _, mant := range []uint64{0, 1, 2, 1 << 51, 1<<52 - 2, 1<<52 - 1} {
			bits := biased<<52 | mant
			if bits == 0 || bits&expMask64 == expMask64 {
				continue
			}
			checkFloat64(t, math.Float64frombits(bits))
			checkFloat64(t, math.Float64frombits(bits|1<<63))
		}
	}
	for biased := uint32(0); biased < 255; biased++ {
		for _, mant := range []uint32{0, 1, 2, 1 << 22, 1<<23 - 2, 1<<23 - 1} {
			bits := biased<<23 | mant
			if bits == 0 || bits&expMask32 == expMask32 {
				continue
			}
			checkFloat32(t, math.Float32frombits(bits))
		}
	}
}

// TestUncentered pins down the asymmetric interval around powers of two:
// the lower neighbor of 2^k is half as far as the upper one, so the
// shortest digits of a power of two and of its predecessor must differ.
func TestUncentered(t *testing.T) {
	var b Buffer
	for _, k := range []int{-30, -1, 1, 10, 60, 100, 300} {
		f := math.Ldexp(1, k)
		p := math.Nextafter(f, 0)
		require.NotEqual(t, strings.Clone(b.Format(f)), b.Format(p), "2^%d", k)
		checkFloat64(t, f)
		checkFloat64(t, p)
		checkFloat64(t, math.Nextafter(f, math.Inf(1)))
	}
}

func TestIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	var b, b2 Buffer
	for range 20000 {
		bits := r.Uint64()
		if bits&expMask64 == expMask64 {
			continue
		}
		s := string(b.Format(math.Float64frombits(bits)))
		g, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		require.Equal(t, s, b2.Format(g))
	}
}

// TestExhaustive32 sweeps float32 bit patterns: strided by default, every
// pattern with -exhaustive (takes a while).
func TestExhaustive32(t *testing.T) {
	step := uint64(9973)
	if *exhaustive {
		step = 1
	} else if testing.Short() {
		step = 1999993
	}
	for bits := uint64(0); bits < 1<<32; bits += step {
		b := uint32(bits)
		if b&expMask32 == expMask32 || b&^(uint32(1)<<31) == 0 {
			continue
		}
		checkFloat32(t, math.Float32frombits(b))
	}
}

func TestAppend(t *testing.T) {
	got := AppendFloat64([]byte("x="), 1.25)
	assert.Equal(t, "x=1.25", string(got))
	got32 := AppendFloat32(nil, float32(0.5))
	assert.Equal(t, "0.5", string(got32))
}

// Formatting must not allocate: the returned string aliases the buffer.
func TestNoAlloc(t *testing.T) {
	var b Buffer
	n := testing.AllocsPerRun(100, func() {
		b.Format(math.Pi)
		b.FormatDecimal(5e-324)
		b.FormatScientific(math.MaxFloat64)
	})
	assert.Zero(t, n)
}

var benchInputs = []float64{
	1.23,
	123.456,
	math.Pi,
	1e30,
	5e-324,
	1.7976931348623157e308,
	43.928328999999962,
}

func BenchmarkFormat(b *testing.B) {
	var buf Buffer
	for _, f := range benchInputs {
		b.Run(strconv.FormatFloat(f, 'g', 3, 64), func(b *testing.B) {
			for range b.N {
				buf.Format(f)
			}
		})
	}
}

func BenchmarkStrconv(b *testing.B) {
	var buf [32]byte
	for _, f := range benchInputs {
		b.Run(strconv.FormatFloat(f, 'g', 3, 64), func(b *testing.B) {
			for range b.N {
				strconv.AppendFloat(buf[:0], f, 'g', -1, 64)
			}
		})
	}
}
