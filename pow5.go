// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teju

// maxUint64 is the largest possible uint64.
const maxUint64 = 1<<64 - 1

const maxUint32 = 1<<32 - 1

// divisiblePow5x64 reports whether x is divisible by 5^p.
// It returns false for p >= 28, because 5^28 > 2^64, so no nonzero
// uint64 can be such a multiple.
func divisiblePow5x64(x uint64, p int32) bool {
	return uint32(p) < uint32(len(div5Tab64)) && x*div5Tab64[p][0] <= div5Tab64[p][1]
}

// divisiblePow5x32 reports whether x is divisible by 5^p.
// It returns false for p >= 14, because 5^14 > 2^32.
func divisiblePow5x32(x uint32, p int32) bool {
	return uint32(p) < uint32(len(div5Tab32)) && x*div5Tab32[p][0] <= div5Tab32[p][1]
}

// div5Tab64[p] is the multiplicative inverse of 5**p mod 2^64 and
// maxUint64/5**p.
var div5Tab64 = [28][2]uint64{
	{0x0000000000000001, maxUint64},
	{0xcccccccccccccccd, maxUint64 / 5},
	{0x8f5c28f5c28f5c29, maxUint64 / 25},
	{0x1cac083126e978d5, maxUint64 / 125},
	{0xd288ce703afb7e91, maxUint64 / 625},
	{0x5d4e8fb00bcbe61d, maxUint64 / 3125},
	{0x790fb65668c26139, maxUint64 / 15625},
	{0xe5032477ae8d46a5, maxUint64 / 78125},
	{0xc767074b22e90e21, maxUint64 / 390625},
	{0x8e47ce423a2e9c6d, maxUint64 / 1953125},
	{0x4fa7f60d3ed61f49, maxUint64 / 9765625},
	{0x0fee64690c913975, maxUint64 / 48828125},
	{0x3662e0e1cf503eb1, maxUint64 / 244140625},
	{0xa47a2cf9f6433fbd, maxUint64 / 1220703125},
	{0x54186f653140a659, maxUint64 / 6103515625},
	{0x7738164770402145, maxUint64 / 30517578125},
	{0xe4a4d1417cd9a041, maxUint64 / 152587890625},
	{0xc75429d9e5c5200d, maxUint64 / 762939453125},
	{0xc1773b91fac10669, maxUint64 / 3814697265625},
	{0x26b172506559ce15, maxUint64 / 19073486328125},
	{0xd489e3a9addec2d1, maxUint64 / 95367431640625},
	{0x90e860bb892c8d5d, maxUint64 / 476837158203125},
	{0x502e79bf1b6f4f79, maxUint64 / 2384185791015625},
	{0xdcd618596be30fe5, maxUint64 / 11920928955078125},
	{0x2c2ad1ab7bfa3661, maxUint64 / 59604644775390625},
	{0x08d55d224bfed7ad, maxUint64 / 298023223876953125},
	{0x01c445d3a8cc9189, maxUint64 / 1490116119384765625},
	{0xcd27412a54f5b6b5, maxUint64 / 7450580596923828125},
}

// div5Tab32[p] is the multiplicative inverse of 5**p mod 2^32 and
// maxUint32/5**p.
var div5Tab32 = [14][2]uint32{
	{0x00000001, maxUint32},
	{0xcccccccd, maxUint32 / 5},
	{0xc28f5c29, maxUint32 / 25},
	{0x26e978d5, maxUint32 / 125},
	{0x3afb7e91, maxUint32 / 625},
	{0x0bcbe61d, maxUint32 / 3125},
	{0x68c26139, maxUint32 / 15625},
	{0xae8d46a5, maxUint32 / 78125},
	{0x22e90e21, maxUint32 / 390625},
	{0x3a2e9c6d, maxUint32 / 1953125},
	{0x3ed61f49, maxUint32 / 9765625},
	{0x0c913975, maxUint32 / 48828125},
	{0xcf503eb1, maxUint32 / 244140625},
	{0xf6433fbd, maxUint32 / 1220703125},
}
