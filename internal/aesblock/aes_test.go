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

package aesblock

import (
	"testing"

	"github.com/cryptfault/dfa128/internal/block"
)

func TestSelfTest(t *testing.T) {
	if err := SelfTest(); err != nil {
		t.Fatalf("SelfTest: %v", err)
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, err := block.ParseHex("000102030405060708090a0b0c0d0e0f")
	if err != nil {
		t.Fatalf("parse key: %v", err)
	}
	pt, err := block.ParseHex("00112233445566778899aabbccddeeff")
	if err != nil {
		t.Fatalf("parse plaintext: %v", err)
	}

	ct, err := Encrypt(key, pt)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	want, err := block.ParseHex("69c4e0d86a7b0430d8cdb78070b4c55a")
	if err != nil {
		t.Fatalf("parse expected ciphertext: %v", err)
	}
	if ct != want {
		t.Fatalf("Encrypt = %s, want %s", ct.Hex(), want.Hex())
	}

	back, err := Decrypt(key, ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if back != pt {
		t.Fatalf("Decrypt(Encrypt(pt)) = %s, want %s", back.Hex(), pt.Hex())
	}
}

func TestEncryptAcceptsZeroKey(t *testing.T) {
	// block.State is always 16 bytes so aes.NewCipher cannot reject it on
	// length; Encrypt therefore returns no error even for the all-zero key.
	var zero block.State
	if _, err := Encrypt(zero, zero); err != nil {
		t.Fatalf("Encrypt with zero key: %v", err)
	}
}
