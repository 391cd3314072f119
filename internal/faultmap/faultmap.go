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

// Package faultmap holds the fixed tables that translate a fault byte
// position into the column group, GF(2^8) coefficients, and index
// permutations the standard and improved filters use. These tables encode
// the effect of ShiftRows and the cycling of MixColumns coefficients across
// every possible single-byte fault position; they are reproduced verbatim
// from the reference implementation and must never be hand-tuned.
package faultmap

// RelatedBytes groups the 16 state byte positions into the 4 columns that,
// after unwinding ShiftRows, came from a single pre-ShiftRows column.
var RelatedBytes = [4][4]int{
	{0x0, 0x7, 0xa, 0xd},
	{0x1, 0x4, 0xb, 0xe},
	{0x2, 0x5, 0x8, 0xf},
	{0x3, 0x6, 0x9, 0xc},
}

// MapFault assigns each fault byte position l in 0..15 to a column-group
// index g in 0..3, selecting which row of IDeltas1/IndicesX/IndicesY
// applies.
var MapFault = [16]int{
	0x0, 0x1, 0x2, 0x3, 0x3, 0x0, 0x1, 0x2, 0x2, 0x3, 0x0, 0x1, 0x1, 0x2, 0x3, 0x0,
}

// IDeltas1 gives, per column group and per state position, the GF(2^8)
// coefficient (an inverse of one of the three possible MixColumns
// coefficients {01, 02, 03}) used by the standard filter's per-byte
// signature.
var IDeltas1 = [4][16]byte{
	{0x8d, 0x01, 0x8d, 0x01, 0x01, 0xf6, 0x01, 0xf6, 0x01, 0x8d, 0x01, 0x8d, 0xf6, 0x01, 0xf6, 0x01},
	{0x01, 0xf6, 0x01, 0xf6, 0x01, 0x8d, 0x01, 0x8d, 0xf6, 0x01, 0xf6, 0x01, 0x8d, 0x01, 0x8d, 0x01},
	{0x01, 0x8d, 0x01, 0x8d, 0xf6, 0x01, 0xf6, 0x01, 0x8d, 0x01, 0x8d, 0x01, 0x01, 0xf6, 0x01, 0xf6},
	{0xf6, 0x01, 0xf6, 0x01, 0x8d, 0x01, 0x8d, 0x01, 0x01, 0xf6, 0x01, 0xf6, 0x01, 0x8d, 0x01, 0x8d},
}

// IDeltas2 gives, per fault row (l mod 4) and per improved-filter equation,
// the GF(2^8) coefficient applied to that equation's residue.
var IDeltas2 = [4][4]byte{
	{0x8d, 0x01, 0x01, 0xf6},
	{0xf6, 0x8d, 0x01, 0x01},
	{0x01, 0xf6, 0x8d, 0x01},
	{0x01, 0x01, 0xf6, 0x8d},
}

// IndicesX reorders (c, d, k) byte positions into the 4 groups of 4 the
// improved filter's fault equations consume.
var IndicesX = [4][16]int{
	{0x0, 0xd, 0xa, 0x7, 0xc, 0x9, 0x6, 0x3, 0x8, 0x5, 0x2, 0xf, 0x4, 0x1, 0xe, 0xb},
	{0xc, 0x9, 0x6, 0x3, 0x8, 0x5, 0x2, 0xf, 0x4, 0x1, 0xe, 0xb, 0x0, 0xd, 0xa, 0x7},
	{0x8, 0x5, 0x2, 0xf, 0x4, 0x1, 0xe, 0xb, 0x0, 0xd, 0xa, 0x7, 0xc, 0x9, 0x6, 0x3},
	{0x4, 0x1, 0xe, 0xb, 0x0, 0xd, 0xa, 0x7, 0xc, 0x9, 0x6, 0x3, 0x8, 0x5, 0x2, 0xf},
}

// IndicesY is the matching permutation for the round-9 key h.
var IndicesY = [4][16]int{
	{0x0, 0x1, 0x2, 0x3, 0xc, 0xd, 0xe, 0xf, 0x8, 0x9, 0xa, 0xb, 0x4, 0x5, 0x6, 0x7},
	{0xc, 0xd, 0xe, 0xf, 0x8, 0x9, 0xa, 0xb, 0x4, 0x5, 0x6, 0x7, 0x0, 0x1, 0x2, 0x3},
	{0x8, 0x9, 0xa, 0xb, 0x4, 0x5, 0x6, 0x7, 0x0, 0x1, 0x2, 0x3, 0xc, 0xd, 0xe, 0xf},
	{0x4, 0x5, 0x6, 0x7, 0x0, 0x1, 0x2, 0x3, 0xc, 0xd, 0xe, 0xf, 0x8, 0x9, 0xa, 0xb},
}
