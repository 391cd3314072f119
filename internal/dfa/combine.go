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
	"sort"

	"github.com/cryptfault/dfa128/internal/block"
	"github.com/cryptfault/dfa128/internal/faultmap"
)

// Combine takes the Cartesian product of the four candidate-key lists at
// each surviving signature, for every column, laying out each resulting
// tuple in positional order [col_pos_0, col_pos_1, col_pos_2, col_pos_3].
//
// Output order is deterministic: signatures ascending, then per-position
// insertion order (which BuildDifferentials already produces key-ascending,
// since it iterates k from 0 to 255).
func Combine(x DiffTable) [4][]block.KeyTuple {
	var result [4][]block.KeyTuple

	for col := 0; col < 4; col++ {
		positions := faultmap.RelatedBytes[col]
		w, xp, y, z := x[positions[0]], x[positions[1]], x[positions[2]], x[positions[3]]

		sigs := make([]byte, 0, len(w))
		for sig := range w {
			sigs = append(sigs, sig)
		}
		sort.Slice(sigs, func(i, j int) bool { return sigs[i] < sigs[j] })

		var v []block.KeyTuple
		for _, sig := range sigs {
			for _, kw := range w[sig] {
				for _, kx := range xp[sig] {
					for _, ky := range y[sig] {
						for _, kz := range z[sig] {
							v = append(v, block.KeyTuple{kw, kx, ky, kz})
						}
					}
				}
			}
		}
		result[col] = v
	}
	return result
}
