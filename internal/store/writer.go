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

package store

import (
	"encoding/hex"
	"hash"
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/cryptfault/dfa128/internal/block"
)

// ResultWriter appends candidate master keys to a single per-pair output
// file, across however many fault locations are attempted. It mirrors
// std/comp.go's CompStream pattern of wrapping a plain io.Writer: here the
// thing being wrapped is a result file instead of a network connection,
// and the wrapper is optional (snappy) compression plus an optional
// running sha3 digest of the uncompressed content.
type ResultWriter struct {
	file       *os.File
	sink       io.Writer
	snap       *snappy.Writer
	digest     hash.Hash
	path       string
	headerDone bool
}

// NewResultWriter creates (truncating) the result file at path. When
// compress is true, candidate lines are snappy-compressed as they stream
// out, the direct response to spec.md §5's invitation to stream or batch
// under adverse, very-large keyspace inputs. When digest is true, a
// running sha3-256 over the uncompressed content is kept and written to
// path+".sha3" on Close.
func NewResultWriter(path string, compress, digest bool) (*ResultWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "store: create output file")
	}

	w := &ResultWriter{file: f, path: path}
	w.sink = f
	if compress {
		w.snap = snappy.NewBufferedWriter(f)
		w.sink = w.snap
	}
	if digest {
		w.digest = sha3.New256()
	}
	return w, nil
}

func (w *ResultWriter) write(p []byte) error {
	if w.digest != nil {
		w.digest.Write(p)
	}
	_, err := w.sink.Write(p)
	return errors.Wrap(err, "store: write output file")
}

// WriteHeader writes the plaintext/ciphertext header required by
// brute-force mode. It is a no-op after the first call, since the header
// is the same for every fault location attempted against one input
// record.
func (w *ResultWriter) WriteHeader(plaintext, ciphertext block.State) error {
	if w.headerDone {
		return nil
	}
	w.headerDone = true
	if err := w.write([]byte(plaintext.Hex() + "\n")); err != nil {
		return err
	}
	return w.write([]byte(ciphertext.Hex() + "\n"))
}

// WriteKeys appends one hex line per master key.
func (w *ResultWriter) WriteKeys(keys []block.State) error {
	for _, k := range keys {
		if err := w.write([]byte(k.Hex() + "\n")); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes any pending compressed output, closes the file, and — if
// a digest was requested — writes the hex-encoded sha3-256 sum to
// path+".sha3".
func (w *ResultWriter) Close() error {
	if w.snap != nil {
		if err := w.snap.Close(); err != nil {
			return errors.Wrap(err, "store: flush compressed output")
		}
	}
	if err := w.file.Close(); err != nil {
		return errors.Wrap(err, "store: close output file")
	}
	if w.digest != nil {
		sum := w.digest.Sum(nil)
		if err := os.WriteFile(w.path+".sha3", []byte(hex.EncodeToString(sum)+"\n"), 0o644); err != nil {
			return errors.Wrap(err, "store: write digest file")
		}
	}
	return nil
}
