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

// Package store reads the input file of ciphertext-pair records and writes
// the per-pair candidate master-key files, with optional streaming
// compression and an integrity digest alongside each output file.
package store

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/cryptfault/dfa128/internal/block"
)

// Record is one line of the input file: a correct/faulty ciphertext pair,
// and the plaintext that produced the correct ciphertext when brute-force
// mode requires it.
type Record struct {
	Correct      block.State
	Faulty       block.State
	Plaintext    block.State
	HasPlaintext bool
}

// ReadRecords parses the input file format of spec.md §6: one record per
// line, two or three space-separated 32-character lowercase hex strings
// (correct ciphertext, faulty ciphertext, optional plaintext). bf selects
// whether the third field is required.
func ReadRecords(path string, bf bool) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "store: open input file")
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || (bf && len(fields) < 3) {
			return nil, errors.Errorf("store: input line %d: expected %s fields, got %d", lineNo, wantFields(bf), len(fields))
		}

		c, err := block.ParseHex(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "store: input line %d: correct ciphertext", lineNo)
		}
		d, err := block.ParseHex(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "store: input line %d: faulty ciphertext", lineNo)
		}

		rec := Record{Correct: c, Faulty: d}
		if bf {
			p, err := block.ParseHex(fields[2])
			if err != nil {
				return nil, errors.Wrapf(err, "store: input line %d: plaintext", lineNo)
			}
			rec.Plaintext = p
			rec.HasPlaintext = true
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "store: read input file")
	}
	return records, nil
}

func wantFields(bf bool) string {
	if bf {
		return "3"
	}
	return "2 or 3"
}
