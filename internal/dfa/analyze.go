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
	"math"
	"sync"

	"github.com/cryptfault/dfa128/internal/block"
)

// Result is the outcome of analysing one (c, d, l) triple: the surviving
// round-10 subkeys in shard-index order, and their reconstructed master
// keys at the same indices, plus the key-space sizes (as log2) before and
// after the improved filter.
type Result struct {
	RoundKeys  []block.State
	MasterKeys []block.State
	BeforeLog2 float64
	AfterLog2  float64
}

// Analyze runs the full pipeline for one fault location: standard filter,
// combine, shard across workers, run the improved filter on each shard in
// its own goroutine, and reconstruct the master key for every surviving
// subkey. Shards are collected into a pre-sized slice indexed by shard
// number, so the final candidate order is identical no matter how the
// goroutines are scheduled.
//
// When c == d there is no differential to work with: every key byte gives
// the same signature, so nothing is filtered. Analyze then returns no
// candidates and reports the full 2^128 key space as the size before the
// improved filter.
func Analyze(c, d block.State, l, workers int) Result {
	if c == d {
		return Result{BeforeLog2: 128, AfterLog2: math.Inf(-1)}
	}
	cmb := Combine(StandardFilter(BuildDifferentials(c, d, l)))
	before := len(cmb[0]) * len(cmb[1]) * len(cmb[2]) * len(cmb[3])

	shards := Partition(cmb, workers)
	perShard := make([][]block.State, len(shards))

	var wg sync.WaitGroup
	for i, shard := range shards {
		wg.Add(1)
		go func(i int, shard [4][]block.KeyTuple) {
			defer wg.Done()
			perShard[i] = ImprovedFilter(c, d, shard, l)
		}(i, shard)
	}
	wg.Wait()

	var roundKeys []block.State
	for _, v := range perShard {
		roundKeys = append(roundKeys, v...)
	}

	masterKeys := make([]block.State, len(roundKeys))
	for i, k := range roundKeys {
		masterKeys[i] = Reconstruct(k)
	}

	return Result{
		RoundKeys:  roundKeys,
		MasterKeys: masterKeys,
		BeforeLog2: math.Log2(float64(before)),
		AfterLog2:  math.Log2(float64(len(roundKeys))),
	}
}
