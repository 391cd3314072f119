// The MIT License (MIT)
//
// Copyright (c) 2024 dfa128 contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package galois holds the process-wide, immutable GF(2^8) multiplication
// tables, the AES S-box/inverse S-box and the round-constant vector used by
// the differential fault analysis pipeline. Everything here is static data
// computed once at init time and must never be copied per call: it is the
// hot read set of the inner loop in the improved filter.
package galois

// reductionPoly is AES's field polynomial, x^8+x^4+x^3+x+1.
const reductionPoly = 0x11b

// mul multiplies two GF(2^8) elements modulo reductionPoly.
func mul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= byte(reductionPoly & 0xff)
		}
		b >>= 1
	}
	return p
}

// table builds the 256-entry multiplication-by-coefficient table for a.
func table(a byte) [256]byte {
	var t [256]byte
	for v := 0; v < 256; v++ {
		t[v] = mul(byte(v), a)
	}
	return t
}

// Coefficients used by the AES MixColumns/InvMixColumns matrices and by the
// differential equations of the standard and improved filters.
var (
	GM01 = table(0x01)
	GM09 = table(0x09)
	GM0B = table(0x0b)
	GM0D = table(0x0d)
	GM0E = table(0x0e)
	GM8D = table(0x8d)
	GMF6 = table(0xf6)
)

// GMTable maps a GF(2^8) coefficient byte to its precomputed multiplication
// table, for the {01, 09, 0b, 0d, 0e, 8d, f6} coefficients this pipeline
// uses. It panics on an unknown coefficient since the fault-location maps
// (package faultmap) only ever reference this fixed set.
func GMTable(coef byte) *[256]byte {
	switch coef {
	case 0x01:
		return &GM01
	case 0x09:
		return &GM09
	case 0x0b:
		return &GM0B
	case 0x0d:
		return &GM0D
	case 0x0e:
		return &GM0E
	case 0x8d:
		return &GM8D
	case 0xf6:
		return &GMF6
	default:
		panic("galois: no table for coefficient")
	}
}

// inverse returns the multiplicative inverse of v in GF(2^8), or 0 for v==0
// (matching the AES S-box convention).
func inverse(v byte) byte {
	if v == 0 {
		return 0
	}
	for i := 1; i < 256; i++ {
		if mul(v, byte(i)) == 1 {
			return byte(i)
		}
	}
	panic("galois: no inverse found")
}

func rotl8(b byte, c uint) byte {
	return (b << c) | (b >> (8 - c))
}

// buildSBox computes the AES S-box: multiplicative inverse in GF(2^8)
// followed by the fixed affine transformation over GF(2).
func buildSBox() [256]byte {
	var s [256]byte
	for v := 0; v < 256; v++ {
		x := inverse(byte(v))
		y := x ^ rotl8(x, 1) ^ rotl8(x, 2) ^ rotl8(x, 3) ^ rotl8(x, 4) ^ 0x63
		s[v] = y
	}
	return s
}

// SBox and InvSBox are the AES byte substitution and its inverse.
var (
	SBox    = buildSBox()
	InvSBox = func() [256]byte {
		var inv [256]byte
		for i, s := range SBox {
			inv[s] = byte(i)
		}
		return inv
	}()
)

// Rcon is the AES round-constant vector, indexed the way the key schedule
// uses it: Rcon[r] is XORed into column 0 of round r's first word
// derivation. Rcon[0] is the recurrence seed (xtime(Rcon[0]) == Rcon[1]),
// carried only so every entry is produced by the same doubling rule.
var Rcon = func() [11]byte {
	var r [11]byte
	r[0] = 0x8d
	for i := 1; i <= 10; i++ {
		r[i] = mul(r[i-1], 0x02)
	}
	return r
}()
