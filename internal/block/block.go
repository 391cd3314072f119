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

// Package block defines the fixed-size AES state/key types shared by every
// stage of the fault analysis pipeline, plus their hex encoding.
package block

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// State is a 16-byte AES block or round key, column-major as in the AES
// specification: bytes 0..3 form column 0, 4..7 column 1, and so on.
type State [16]byte

// KeyTuple holds the four key-byte candidates sharing a column in the last
// round, after unwinding ShiftRows.
type KeyTuple [4]byte

// ParseHex decodes a 32-character lowercase hex string into a State. The
// first character of each byte pair is the high nibble.
func ParseHex(s string) (State, error) {
	var st State
	if len(s) != 32 {
		return st, errors.Errorf("block: hex string must be 32 characters, got %d", len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return st, errors.Wrap(err, "block: invalid hex")
	}
	copy(st[:], raw)
	return st, nil
}

// Hex renders a State as a 32-character lowercase hex string.
func (s State) Hex() string {
	return hex.EncodeToString(s[:])
}

// XOR returns the byte-wise XOR of two states.
func (s State) XOR(o State) State {
	var r State
	for i := range s {
		r[i] = s[i] ^ o[i]
	}
	return r
}
