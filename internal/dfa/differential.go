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

// Package dfa implements the Piret-Quisquater differential fault analysis
// pipeline: building per-byte differential signatures, narrowing them with
// the standard and improved filters, and reconstructing master keys from
// the surviving round-10 subkeys.
package dfa

import (
	"github.com/cryptfault/dfa128/internal/block"
	"github.com/cryptfault/dfa128/internal/faultmap"
	"github.com/cryptfault/dfa128/internal/galois"
)

// DiffTable is the per-position multimap from an 8-bit signature to the
// key-byte candidates that produce it. It is kept as a map of slices
// rather than an ordered multimap; callers that need determinism (Combine)
// sort the signature keys themselves before iterating, as spec.md's
// "multimap choice" note allows.
type DiffTable [16]map[byte][]byte

// BuildDifferentials computes, for each of the 16 state positions and each
// of the 256 key-byte hypotheses, the signature
//
//	gm[ InvSBox(c[i]^k) ^ InvSBox(d[i]^k) ]
//
// where gm is the GF(2^8) table selected for position i by the fault
// location l. No filtering happens here; every (signature, k) pair is
// recorded.
func BuildDifferentials(c, d block.State, l int) DiffTable {
	gm := faultmap.IDeltas1[faultmap.MapFault[l]]

	var x DiffTable
	for i := range x {
		x[i] = make(map[byte][]byte, 256)
	}

	for k := 0; k < 256; k++ {
		kb := byte(k)
		for i := 0; i < 16; i++ {
			table := galois.GMTable(gm[i])
			sig := table[galois.InvSBox[c[i]^kb]^galois.InvSBox[d[i]^kb]]
			x[i][sig] = append(x[i][sig], kb)
		}
	}
	return x
}
