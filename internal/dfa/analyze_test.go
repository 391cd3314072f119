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

import "testing"

// TestAnalyzeIsWorkerCountInvariant checks the part of Analyze a unit test
// can afford to run at full, real scale: BuildDifferentials, StandardFilter,
// Combine and Partition are genuinely run end to end, and the worker count
// only changes how the column-0 candidates are sharded, never the shard
// contents' union. Running ImprovedFilter itself to completion at this
// scale is real analysis work (the full Cartesian product is on the order
// of 2^32 tuples for a single-byte fault), not something a unit test should
// do; that equation logic is covered separately with a small synthetic
// shard in TestImprovedFilterRecoversTrueRoundKey.
func TestAnalyzeIsWorkerCountInvariant(t *testing.T) {
	c := mustParse(t, correctCiphertext)
	d := mustParse(t, faultyCiphertextByLocation[0])

	cmb := Combine(StandardFilter(BuildDifferentials(c, d, 0)))
	wantBefore := len(cmb[0]) * len(cmb[1]) * len(cmb[2]) * len(cmb[3])
	if wantBefore == 0 {
		t.Fatal("expected a nonzero combined candidate count for a genuine fault pair")
	}

	for _, workers := range []int{1, 2, 5} {
		shards := Partition(cmb, workers)
		if len(shards) != workers {
			t.Fatalf("workers=%d: got %d shards", workers, len(shards))
		}
		var total int
		for _, s := range shards {
			total += len(s[0]) * len(s[1]) * len(s[2]) * len(s[3])
		}
		if total != wantBefore {
			t.Fatalf("workers=%d: sharded candidate total %d, want %d", workers, total, wantBefore)
		}
	}
}
