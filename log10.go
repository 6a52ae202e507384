// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teju

// log10Mul is log10(2) * 2**32, rounded up. The euclidean approximations
// below are exact for |e| <= 112815, far beyond any float exponent.
const log10Mul = 1292913987

// exp10Pow2 returns the largest f such that 10**f <= 2**e.
func exp10Pow2(e int32) int32 {
	return int32(int64(e) * log10Mul >> 32)
}

// exp10Pow2Residual returns e - e0, where e0 is the smallest exponent with
// exp10Pow2(e0) == exp10Pow2(e). The residual is at most 3.
func exp10Pow2Residual(e int32) uint32 {
	return uint32(int64(e)*log10Mul) / log10Mul
}
