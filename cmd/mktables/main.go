// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mktables generates the scaled-power-of-ten tables (tables64.go and
// tables32.go in the package root). For each decimal exponent f reachable
// by the float width it emits the 2N-bit fixed-point upper approximation
// of 2**(e0-1) / 10**f, where e0 is the smallest binary exponent e with
// floor(log10(2**e)) == f. These are the only values the digit generator
// needs to compare interval endpoints exactly; the derivation uses
// math/big here so the package itself never does.
//
// Usage:
//
//	go run ./cmd/mktables
package main

import (
	"bytes"
	"fmt"
	"log"
	"math/big"
	"os"
)

const header = `// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Code generated by mktables. DO NOT EDIT.

package teju

`

func main() {
	log.SetFlags(0)
	log.SetPrefix("mktables: ")
	write("tables64.go", gen(64, 53, 11, "64", "uint128"))
	write("tables32.go", gen(32, 24, 8, "32", "uint64"))
}

func write(name string, data []byte) {
	if err := os.WriteFile(name, data, 0o666); err != nil {
		log.Fatal(err)
	}
}

// log10Pow2 returns floor(log10(2**e)), matching exp10Pow2 in the package.
func log10Pow2(e int) int {
	return int(int64(e) * 1292913987 >> 32)
}

// minE returns the smallest e with log10Pow2(e) == f.
func minE(f int) int {
	e := f*217706 >> 16 // ≈ f*log2(10), may be a few low
	for log10Pow2(e-1) == f {
		e--
	}
	for log10Pow2(e) != f {
		e++
	}
	return e
}

// mult returns ceil(2**(e0-1+2*bits) / 10**f).
func mult(f, e0, bits int) *big.Int {
	num := big.NewInt(1)
	den := big.NewInt(1)
	if e := e0 - 1 + 2*bits; e >= 0 {
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
	// The approximation must have its top bit set, or the proven error
	// bound does not hold.
	if q.BitLen() < 2*bits || q.BitLen() > 2*bits+1 {
		log.Fatalf("multiplier for 10**%d out of range: %d bits", f, q.BitLen())
	}
	return q
}

func gen(bits, mantBits, expBits int, suffix, elem string) []byte {
	minExp := -(1<<(expBits-1) - 3) - mantBits
	maxExp := (1<<expBits - 2) - 1 + minExp
	fmin := log10Pow2(minExp)
	fmax := log10Pow2(maxExp)

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("\n")
	if bits == 64 {
		fmt.Fprintf(&buf, "// mult64Tab[f-mult64MinExp10] is the 128-bit fixed-point upper approximation\n")
		fmt.Fprintf(&buf, "// of 2**(e0-1) / 10**f, where e0 is the smallest binary exponent whose decimal\n")
		fmt.Fprintf(&buf, "// magnitude is f. See mshift64.\n")
	} else {
		fmt.Fprintf(&buf, "// mult32Tab[f-mult32MinExp10] is the 64-bit fixed-point upper approximation\n")
		fmt.Fprintf(&buf, "// of 2**(e0-1) / 10**f for the float32 exponent range. See mshift32.\n")
	}
	fmt.Fprintf(&buf, "const (\n\tmult%sMinExp10 = %d\n\tmult%sMaxExp10 = %d\n)\n\n", suffix, fmin, suffix, fmax)
	fmt.Fprintf(&buf, "var mult%sTab = [%d]%s{\n", suffix, fmax-fmin+1, elem)

	mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	mask.Sub(mask, big.NewInt(1))
	for f := fmin; f <= fmax; f++ {
		m := mult(f, minE(f), bits)
		hi := new(big.Int).Rsh(m, uint(bits))
		lo := new(big.Int).And(m, mask)
		if bits == 64 {
			fmt.Fprintf(&buf, "\t{0x%016x, 0x%016x}, // 10**%d\n", hi, lo, f)
		} else {
			fmt.Fprintf(&buf, "\t0x%016x, // 10**%d\n", m, f)
		}
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}
