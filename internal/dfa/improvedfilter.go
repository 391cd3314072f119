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

package dfa

import (
	"github.com/cryptfault/dfa128/internal/block"
	"github.com/cryptfault/dfa128/internal/faultmap"
	"github.com/cryptfault/dfa128/internal/galois"
)

// mixColBase is the InvMixColumns coefficient row (0e, 0b, 0d, 09); each of
// the 4 improved-filter equations uses this row rotated right by its
// equation index, matching the rotating column of InvMixColumns.
var mixColBase = [4]byte{0x0e, 0x0b, 0x0d, 0x09}

// equation holds everything one of the 4 improved-filter fault equations
// needs, pre-hoisted out of the hot 4-level loop: the 4 (x,y) index pairs,
// their rotated mix-column coefficient tables, and the final scaling table.
type equation struct {
	xs     [4]int
	ys     [4]int
	mixTab [4]*[256]byte
	outTab *[256]byte
}

func rotateRight(row [4]byte, n int) [4]byte {
	var r [4]byte
	for i := 0; i < 4; i++ {
		r[(i+n)%4] = row[i]
	}
	return r
}

func buildEquations(l int) [4]equation {
	g := faultmap.MapFault[l]
	xs := faultmap.IndicesX[g]
	ys := faultmap.IndicesY[g]
	outRow := faultmap.IDeltas2[l%4]

	var eqs [4]equation
	for e := 0; e < 4; e++ {
		coefRow := rotateRight(mixColBase, e)
		var eq equation
		for j := 0; j < 4; j++ {
			eq.xs[j] = xs[4*e+j]
			eq.ys[j] = ys[4*e+j]
			eq.mixTab[j] = galois.GMTable(coefRow[j])
		}
		eq.outTab = galois.GMTable(outRow[e])
		eqs[e] = eq
	}
	return eqs
}

// round9Key derives the round-9 key h from the round-10 key candidate k by
// inverting one step of the AES-128 key schedule.
func round9Key(k block.State) block.State {
	var h block.State
	h[0] = k[0] ^ galois.SBox[k[9]^k[13]] ^ galois.Rcon[10]
	h[1] = k[1] ^ galois.SBox[k[10]^k[14]]
	h[2] = k[2] ^ galois.SBox[k[11]^k[15]]
	h[3] = k[3] ^ galois.SBox[k[8]^k[12]]
	for i := 4; i < 16; i++ {
		h[i] = k[i-4] ^ k[i]
	}
	return h
}

// equationResidue evaluates one fault equation's InvSBox(mix(...)) bracket
// against a single ciphertext (correct or faulty).
func equationResidue(eq equation, state, k, h block.State) byte {
	var sum byte
	for j := 0; j < 4; j++ {
		u := galois.InvSBox[state[eq.xs[j]]^k[eq.xs[j]]] ^ h[eq.ys[j]]
		sum ^= eq.mixTab[j][u]
	}
	return galois.InvSBox[sum]
}

// ImprovedFilter runs the column-wise 4-way consistency check across a
// shard of first-column tuples against the full tuple lists of the other 3
// columns, and returns every round-10 subkey candidate that survives.
func ImprovedFilter(c, d block.State, shard [4][]block.KeyTuple, l int) []block.State {
	eqs := buildEquations(l)

	var candidates []block.State
	for i0 := range shard[0] {
		for i1 := range shard[1] {
			for i2 := range shard[2] {
				for i3 := range shard[3] {
					var k block.State
					tuples := [4]block.KeyTuple{shard[0][i0], shard[1][i1], shard[2][i2], shard[3][i3]}
					for col := 0; col < 4; col++ {
						for j, pos := range faultmap.RelatedBytes[col] {
							k[pos] = tuples[col][j]
						}
					}

					h := round9Key(k)

					var f [4]byte
					ok := true
					for e := 0; e < 4; e++ {
						fc := equationResidue(eqs[e], c, k, h)
						fd := equationResidue(eqs[e], d, k, h)
						f[e] = eqs[e].outTab[fc^fd]
						if e > 0 && f[e] != f[0] {
							ok = false
							break
						}
					}
					if ok {
						candidates = append(candidates, k)
					}
				}
			}
		}
	}
	return candidates
}
