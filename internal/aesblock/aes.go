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

// Package aesblock is the one AES-128 block encryptor this tool needs: a
// plain encrypt used only by the brute-force disambiguation pass. The
// original tool reached for AES-NI intrinsics directly; crypto/aes already
// dispatches to the platform's AES instructions when available, so this
// package is a thin wrapper plus a startup self-test and a capability log
// line, not a reimplementation.
package aesblock

import (
	"crypto/aes"
	"log"

	"github.com/klauspost/cpuid/v2"
	"github.com/pkg/errors"

	"github.com/cryptfault/dfa128/internal/block"
)

// Encrypt performs a single AES-128 block encryption of plaintext under
// key.
func Encrypt(key, plaintext block.State) (block.State, error) {
	var out block.State
	c, err := aes.NewCipher(key[:])
	if err != nil {
		return out, errors.Wrap(err, "aesblock: new cipher")
	}
	c.Encrypt(out[:], plaintext[:])
	return out, nil
}

// Decrypt performs a single AES-128 block decryption of ciphertext under
// key.
func Decrypt(key, ciphertext block.State) (block.State, error) {
	var out block.State
	c, err := aes.NewCipher(key[:])
	if err != nil {
		return out, errors.Wrap(err, "aesblock: new cipher")
	}
	c.Decrypt(out[:], ciphertext[:])
	return out, nil
}

// selfTestKey, selfTestPlain and selfTestCipher are the FIPS-197 worked
// example, the same vector the original C tool's self_test checked.
var (
	selfTestKey    = block.State{0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6, 0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c}
	selfTestPlain  = block.State{0x32, 0x43, 0xf6, 0xa8, 0x88, 0x5a, 0x30, 0x8d, 0x31, 0x31, 0x98, 0xa2, 0xe0, 0x37, 0x07, 0x34}
	selfTestCipher = block.State{0x39, 0x25, 0x84, 0x1d, 0x02, 0xdc, 0x09, 0xfb, 0xdc, 0x11, 0x85, 0x97, 0x19, 0x6a, 0x0b, 0x32}
)

// SelfTest encrypts and decrypts the FIPS-197 test vector and fails if
// either direction disagrees with the known-good ciphertext. It logs
// whether the process has hardware AES-NI available, the same fact the
// original intrinsics-based implementation hard-depended on.
func SelfTest() error {
	if cpuid.CPU.Supports(cpuid.AESNI) {
		log.Println("aesblock: hardware AES-NI available")
	} else {
		log.Println("aesblock: no hardware AES-NI, using portable AES")
	}

	got, err := Encrypt(selfTestKey, selfTestPlain)
	if err != nil {
		return errors.Wrap(err, "aesblock: self-test encrypt")
	}
	if got != selfTestCipher {
		return errors.Errorf("aesblock: self-test encrypt mismatch: got %s want %s", got.Hex(), selfTestCipher.Hex())
	}

	back, err := Decrypt(selfTestKey, got)
	if err != nil {
		return errors.Wrap(err, "aesblock: self-test decrypt")
	}
	if back != selfTestPlain {
		return errors.Errorf("aesblock: self-test decrypt mismatch: got %s want %s", back.Hex(), selfTestPlain.Hex())
	}
	return nil
}
