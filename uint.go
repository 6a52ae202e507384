// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teju

import "golang.org/x/exp/constraints"

// lsb returns the low n bits of x.
func lsb[T constraints.Unsigned](x T, n uint32) T {
	return x & (T(1)<<n - 1)
}

func isEven[T constraints.Unsigned](x T) bool {
	return x&1 == 0
}

func b2u[T constraints.Unsigned](b bool) T {
	if b {
		return 1
	}
	return 0
}
