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

import "github.com/cryptfault/dfa128/internal/faultmap"

// StandardFilter narrows each column's four differential tables to the
// signatures present in all four positions of that column. Entries whose
// signature doesn't survive the intersection are dropped; the table shape
// (16 positions) is unchanged.
func StandardFilter(x DiffTable) DiffTable {
	for col := 0; col < 4; col++ {
		positions := faultmap.RelatedBytes[col]

		present := make(map[byte]int, 256)
		for _, pos := range positions {
			for sig := range x[pos] {
				present[sig]++
			}
		}

		valid := make(map[byte]bool, len(present))
		for sig, count := range present {
			if count == len(positions) {
				valid[sig] = true
			}
		}

		for _, pos := range positions {
			for sig := range x[pos] {
				if !valid[sig] {
					delete(x[pos], sig)
				}
			}
		}
	}
	return x
}
