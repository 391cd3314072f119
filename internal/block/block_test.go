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

package block

import "testing"

func TestParseHexRoundTrip(t *testing.T) {
	const hexStr = "2b7e151628aed2a6abf7158809cf4f3c"
	st, err := ParseHex(hexStr)
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if st.Hex() != hexStr {
		t.Fatalf("Hex() = %s, want %s", st.Hex(), hexStr)
	}
	if st[0] != 0x2b || st[1] != 0x7e || st[15] != 0x3c {
		t.Fatalf("unexpected byte layout: %v", st)
	}
}

func TestParseHexErrors(t *testing.T) {
	cases := []string{
		"",
		"2b7e15",                                  // too short
		"2b7e151628aed2a6abf7158809cf4f3c00",      // too long
		"zz7e151628aed2a6abf7158809cf4f3czz",      // non-hex, also wrong length
		"gg7e151628aed2a6abf7158809cf4f3cgg7e1516", // non-hex chars, wrong length
	}
	for _, c := range cases {
		if _, err := ParseHex(c); err == nil {
			t.Errorf("ParseHex(%q): expected error, got nil", c)
		}
	}

	// Exactly 32 chars but containing a non-hex digit.
	if _, err := ParseHex("zz7e151628aed2a6abf7158809cf4f3c"); err == nil {
		t.Error("ParseHex with non-hex digits: expected error, got nil")
	}
}

func TestXOR(t *testing.T) {
	a := State{0xff, 0x00, 0xaa, 0x55}
	b := State{0x0f, 0xf0, 0xaa, 0x55}
	got := a.XOR(b)
	want := State{0xf0, 0xf0, 0x00, 0x00}
	if got != want {
		t.Fatalf("XOR = %v, want %v", got, want)
	}

	// XOR with self is the zero state.
	if z := a.XOR(a); z != (State{}) {
		t.Fatalf("a.XOR(a) = %v, want zero state", z)
	}
}
