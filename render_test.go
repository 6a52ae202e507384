// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teju

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitLen(t *testing.T) {
	p := uint64(1)
	for n := 1; n <= 17; n++ {
		assert.Equal(t, n, digitLen(p), "10**%d", n-1)
		if n > 1 {
			assert.Equal(t, n-1, digitLen(p-1))
		}
		p *= 10
	}
	assert.Equal(t, 17, digitLen(p-1))
	assert.Panics(t, func() { digitLen(p) })
}

func TestPrintMantissa(t *testing.T) {
	var buf [20]byte
	check := func(x uint64) {
		want := strconv.FormatUint(x, 10)
		n := len(want)
		printMantissa(buf[:], x, n)
		require.Equal(t, want, string(buf[:n]), "%d", x)
	}
	for x := uint64(0); x < 3000; x++ {
		check(x)
	}
	r := rand.New(rand.NewSource(4))
	for range 10000 {
		check(r.Uint64() % 1e17)
	}
	check(99999999999999999)
}

func TestPrintExp(t *testing.T) {
	var buf [4]byte
	for e := int32(-999); e <= 999; e++ {
		n := printExp(buf[:], e)
		require.Equal(t, strconv.Itoa(int(e)), string(buf[:n]), "%d", e)
	}
}

var renderTests = []struct {
	mant uint64
	exp  int32
	sci  string
	dec  string
}{
	{1, 0, "1e0", "1"},
	{1, 30, "1e30", "1000000000000000000000000000000"},
	{1, -1, "1e-1", "0.1"},
	{5, -324, "5e-324", ""},
	{1234, -3, "1.234e0", "1.234"},
	{1234, -6, "1.234e-3", "0.001234"},
	{1234, 0, "1.234e3", "1234"},
	{1234, 2, "1.234e5", "123400"},
	{123456, -5, "1.23456e0", "1.23456"},
	{17976931348623157, 292, "1.7976931348623157e308", ""},
	{99, -1, "9.9e0", "9.9"},
	{99, -2, "9.9e-1", "0.99"},
}

func TestRender(t *testing.T) {
	var buf [352]byte
	for _, tt := range renderTests {
		n := fmtSci(buf[:], false, tt.mant, tt.exp)
		assert.Equal(t, tt.sci, string(buf[:n]), "fmtSci(%d, %d)", tt.mant, tt.exp)
		n = fmtSci(buf[:], true, tt.mant, tt.exp)
		assert.Equal(t, "-"+tt.sci, string(buf[:n]))
		if tt.dec != "" {
			n = fmtDec(buf[:], false, tt.mant, tt.exp)
			assert.Equal(t, tt.dec, string(buf[:n]), "fmtDec(%d, %d)", tt.mant, tt.exp)
		}
	}
}

// The two renderers must agree on the value they denote for any digit
// string the generator can produce.
func TestRenderConsistent(t *testing.T) {
	var buf [352]byte
	r := rand.New(rand.NewSource(5))
	for range 20000 {
		mant := r.Uint64()%1e17 + 1
		exp := int32(r.Intn(101) - 50)
		n := fmtSci(buf[:], false, mant, exp)
		vs, err := strconv.ParseFloat(string(buf[:n]), 64)
		require.NoError(t, err)
		n = fmtDec(buf[:], false, mant, exp)
		vd, err := strconv.ParseFloat(string(buf[:n]), 64)
		require.NoError(t, err)
		require.Equal(t, vs, vd, "mant=%d exp=%d", mant, exp)
	}
}
