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
	"github.com/cryptfault/dfa128/internal/galois"
)

func wordFromColumn(s block.State, col int) uint32 {
	return uint32(s[4*col])<<24 | uint32(s[4*col+1])<<16 | uint32(s[4*col+2])<<8 | uint32(s[4*col+3])
}

func columnFromWord(w uint32) [4]byte {
	return [4]byte{byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w)}
}

func rotWord(w uint32) uint32 {
	return (w << 8) | (w >> 24)
}

func subWord(w uint32) uint32 {
	return uint32(galois.SBox[byte(w>>24)])<<24 |
		uint32(galois.SBox[byte(w>>16)])<<16 |
		uint32(galois.SBox[byte(w>>8)])<<8 |
		uint32(galois.SBox[byte(w)])
}

// g is the AES-128 key schedule's round function applied to the last word
// of the previous round: SubWord(RotWord(w)) xor (Rcon[r] << 24).
func g(w uint32, r int) uint32 {
	return subWord(rotWord(w)) ^ uint32(galois.Rcon[r])<<24
}

// Reconstruct derives the 128-bit master key from a recovered round-10
// subkey by inverting the AES-128 key schedule one round at a time, from
// round 10 down to round 1.
func Reconstruct(k block.State) block.State {
	var w [44]uint32
	for col := 0; col < 4; col++ {
		w[40+col] = wordFromColumn(k, col)
	}

	for r := 10; r >= 1; r-- {
		w[4*(r-1)+3] = w[4*r+3] ^ w[4*r+2]
		w[4*(r-1)+2] = w[4*r+2] ^ w[4*r+1]
		w[4*(r-1)+1] = w[4*r+1] ^ w[4*r+0]
		w[4*(r-1)+0] = w[4*r+0] ^ g(w[4*(r-1)+3], r)
	}

	var mk block.State
	for col := 0; col < 4; col++ {
		c := columnFromWord(w[col])
		copy(mk[4*col:4*col+4], c[:])
	}
	return mk
}

// ExpandRound10 runs the forward AES-128 key schedule on a master key and
// returns the round-10 subkey. It exists to validate Reconstruct (its
// left-inverse) in tests; the analysis pipeline itself only ever goes
// from round-10 subkey back to master key.
func ExpandRound10(mk block.State) block.State {
	var w [44]uint32
	for col := 0; col < 4; col++ {
		w[col] = wordFromColumn(mk, col)
	}

	for r := 1; r <= 10; r++ {
		w[4*r+0] = w[4*(r-1)+0] ^ g(w[4*r-1], r)
		w[4*r+1] = w[4*r+0] ^ w[4*(r-1)+1]
		w[4*r+2] = w[4*r+1] ^ w[4*(r-1)+2]
		w[4*r+3] = w[4*r+2] ^ w[4*(r-1)+3]
	}

	var sk block.State
	for col := 0; col < 4; col++ {
		c := columnFromWord(w[40+col])
		copy(sk[4*col:4*col+4], c[:])
	}
	return sk
}
