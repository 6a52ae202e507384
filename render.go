// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Rendering of generated digits into the output buffer. Both float widths
// share one renderer: a float32 significand always fits a uint64.

package teju

// digitsLUT maps i in [0, 100) to its two ASCII digits, halving the
// number of divisions when printing a significand.
const digitsLUT = "" +
	"00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// digitLen returns the number of decimal digits of x.
// The digit generator never produces more than 17.
func digitLen(x uint64) int {
	switch {
	case x >= 1e17:
		panic("teju: significand out of range")
	case x >= 1e16:
		return 17
	case x >= 1e15:
		return 16
	case x >= 1e14:
		return 15
	case x >= 1e13:
		return 14
	case x >= 1e12:
		return 13
	case x >= 1e11:
		return 12
	case x >= 1e10:
		return 11
	case x >= 1e9:
		return 10
	case x >= 1e8:
		return 9
	case x >= 1e7:
		return 8
	case x >= 1e6:
		return 7
	case x >= 1e5:
		return 6
	case x >= 1e4:
		return 5
	case x >= 1e3:
		return 4
	case x >= 100:
		return 3
	case x >= 10:
		return 2
	}
	return 1
}

// printMantissa writes the n digits of x into buf[0:n], two at a time.
func printMantissa(buf []byte, x uint64, n int) {
	i := n
	for x >= 100 {
		q := x / 100
		j := (x - q*100) * 2
		i -= 2
		buf[i] = digitsLUT[j]
		buf[i+1] = digitsLUT[j+1]
		x = q
	}
	if x >= 10 {
		buf[i-2] = digitsLUT[x*2]
		buf[i-1] = digitsLUT[x*2+1]
	} else {
		buf[i-1] = '0' + byte(x)
	}
}

// printExp writes e after the exponent marker: a '-' for negative values,
// no '+', no leading zeros. |e| <= 999 for every supported width.
func printExp(buf []byte, e int32) int {
	n := 0
	if e < 0 {
		buf[0] = '-'
		n = 1
		e = -e
	}
	switch {
	case e >= 100:
		buf[n] = '0' + byte(e/100)
		j := e % 100 * 2
		buf[n+1] = digitsLUT[j]
		buf[n+2] = digitsLUT[j+1]
		return n + 3
	case e >= 10:
		buf[n] = digitsLUT[e*2]
		buf[n+1] = digitsLUT[e*2+1]
		return n + 2
	}
	buf[n] = '0' + byte(e)
	return n + 1
}

// fmtSci renders mant * 10**exp as d[.digits]e[-]exp.
func fmtSci(buf []byte, neg bool, mant uint64, exp int32) int {
	n := 0
	if neg {
		buf[0] = '-'
		n = 1
	}
	mlen := digitLen(mant)
	if mlen == 1 {
		buf[n] = '0' + byte(mant)
		n++
	} else {
		printMantissa(buf[n+1:], mant, mlen)
		buf[n] = buf[n+1]
		buf[n+1] = '.'
		n += mlen + 1
	}
	buf[n] = 'e'
	n++
	return n + printExp(buf[n:], exp+int32(mlen)-1)
}

// fmtDec renders mant * 10**exp in plain decimal notation, however many
// zeros that takes. Integral values carry no decimal point.
func fmtDec(buf []byte, neg bool, mant uint64, exp int32) int {
	n := 0
	if neg {
		buf[0] = '-'
		n = 1
	}
	mlen := digitLen(mant)
	dp := int32(mlen) + exp // position of the decimal point
	switch {
	case exp >= 0:
		printMantissa(buf[n:], mant, mlen)
		for i := int32(mlen); i < dp; i++ {
			buf[n+int(i)] = '0'
		}
		return n + int(dp)
	case dp > 0:
		printMantissa(buf[n:], mant, mlen)
		copy(buf[n+int(dp)+1:n+mlen+1], buf[n+int(dp):n+mlen])
		buf[n+int(dp)] = '.'
		return n + mlen + 1
	default:
		buf[n] = '0'
		buf[n+1] = '.'
		z := int(-dp)
		for i := 0; i < z; i++ {
			buf[n+2+i] = '0'
		}
		printMantissa(buf[n+2+z:], mant, mlen)
		return n + 2 + z + mlen
	}
}

// fmtAuto renders in decimal notation when the decimal point lands within
// (-5, 16] of the leading digit, scientific notation otherwise.
func fmtAuto(buf []byte, neg bool, mant uint64, exp int32) int {
	dp := int32(digitLen(mant)) + exp
	if -5 < dp && dp <= 16 {
		return fmtDec(buf, neg, mant, exp)
	}
	return fmtSci(buf, neg, mant, exp)
}
