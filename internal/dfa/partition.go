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

import "github.com/cryptfault/dfa128/internal/block"

// Partition shards column 0's tuples round-robin across workers many
// shards, each paired with the full, unmodified tuple lists for columns 1,
// 2 and 3. This preserves the total number of 4-column combinations while
// giving each worker an outer-loop stripe to range over.
func Partition(cmb [4][]block.KeyTuple, workers int) [][4][]block.KeyTuple {
	if workers < 1 {
		workers = 1
	}

	shards := make([][4][]block.KeyTuple, workers)
	for i, t := range cmb[0] {
		w := i % workers
		shards[w][0] = append(shards[w][0], t)
	}
	for w := range shards {
		shards[w][1] = cmb[1]
		shards[w][2] = cmb[2]
		shards[w][3] = cmb[3]
	}
	return shards
}
