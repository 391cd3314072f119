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

// Command dfa recovers AES-128 master keys from a Piret-Quisquater
// differential fault pair. See spec.md / SPEC_FULL.md for the full
// contract; usage is `dfa <cores> <location> <bf> <file>`.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/urfave/cli"

	"github.com/cryptfault/dfa128/internal/aesblock"
	"github.com/cryptfault/dfa128/internal/block"
	"github.com/cryptfault/dfa128/internal/config"
	"github.com/cryptfault/dfa128/internal/dfa"
	"github.com/cryptfault/dfa128/internal/store"
)

// usageError marks an argument-parsing failure; main maps it to exit -1,
// every other error to exit 1, per spec.md §7.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func badArgs(format string, args ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func main() {
	app := buildApp()
	if err := app.Run(os.Args); err != nil {
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintf(os.Stderr, "Usage: %s %s\n", app.Name, app.ArgsUsage)
			os.Exit(-1)
		}
		log.Printf("%+v", err)
		os.Exit(1)
	}
}

func buildApp() *cli.App {
	app := cli.NewApp()
	app.Name = "dfa"
	app.Usage = "recover AES-128 master keys from a Piret-Quisquater fault pair"
	app.ArgsUsage = "<cores> <location> <bf> <file>"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "workers",
			Usage: "override <cores> with a worker count (0 = use <cores>)",
		},
		cli.StringFlag{
			Name:  "out-dir",
			Value: "res",
			Usage: "directory to write per-pair candidate files into",
		},
		cli.BoolFlag{
			Name:  "compress",
			Usage: "stream candidate output through snappy compression",
		},
		cli.BoolFlag{
			Name:  "digest",
			Usage: "write a sha3-256 digest alongside each output file",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "JSON file of default values for the flags above",
		},
		cli.BoolFlag{
			Name:  "quiet",
			Usage: "suppress progress lines",
		},
	}
	app.Action = run
	return app
}

func run(c *cli.Context) error {
	if c.NArg() != 4 {
		return badArgs("expected 4 arguments: <cores> <location> <bf> <file>, got %d", c.NArg())
	}

	cores, err := strconv.Atoi(c.Args().Get(0))
	if err != nil || cores < 1 {
		return badArgs("cores: must be a positive integer, got %q", c.Args().Get(0))
	}

	location, err := strconv.Atoi(c.Args().Get(1))
	if err != nil || location < -1 || location > 15 {
		return badArgs("location: must be -1 or in 0..15, got %q", c.Args().Get(1))
	}

	bfArg := c.Args().Get(2)
	if bfArg != "bf" && bfArg != "nobf" {
		return badArgs("bf: must be \"bf\" or \"nobf\", got %q", bfArg)
	}
	bf := bfArg == "bf"

	file := c.Args().Get(3)
	if file == "" {
		return badArgs("file: must not be empty")
	}

	cfg := config.Config{OutDir: "res"}
	if cfgPath := c.String("config"); cfgPath != "" {
		if err := config.Load(cfgPath, &cfg); err != nil {
			return err
		}
	}
	if c.IsSet("workers") && c.Int("workers") > 0 {
		cores = c.Int("workers")
	} else if cfg.Workers > 0 {
		cores = cfg.Workers
	}
	outDir := cfg.OutDir
	if c.IsSet("out-dir") || outDir == "" {
		outDir = c.String("out-dir")
	}
	compress := cfg.Compress || c.Bool("compress")
	digest := cfg.Digest || c.Bool("digest")
	quiet := cfg.Quiet || c.Bool("quiet")

	if err := aesblock.SelfTest(); err != nil {
		return err
	}

	records, err := store.ReadRecords(file, bf)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	locations := locationRange(location)

	for i, rec := range records {
		if !quiet {
			log.Printf("(%d) analysing ciphertext pair: %s %s  workers=%d", i, rec.Correct.Hex(), rec.Faulty.Hex(), cores)
		}

		outPath := filepath.Join(outDir, fmt.Sprintf("%d.csv", i))
		w, err := store.NewResultWriter(outPath, compress, digest)
		if err != nil {
			return err
		}

		var allMasterKeys []block.State
		total := 0
		for _, l := range locations {
			res := dfa.Analyze(rec.Correct, rec.Faulty, l, cores)
			if !quiet {
				log.Printf("    fault location %d: keyspace 2^%.2f -> 2^%.2f", l, res.BeforeLog2, res.AfterLog2)
			}
			total += len(res.MasterKeys)
			allMasterKeys = append(allMasterKeys, res.MasterKeys...)

			if bf {
				if err := w.WriteHeader(rec.Plaintext, rec.Correct); err != nil {
					w.Close()
					return err
				}
			}
			if err := w.WriteKeys(res.MasterKeys); err != nil {
				w.Close()
				return err
			}
		}
		if err := w.Close(); err != nil {
			return err
		}
		if !quiet {
			log.Printf("%d masterkeys written to %s", total, outPath)
		}

		if bf {
			if key, ok := bruteForce(rec.Plaintext, rec.Correct, allMasterKeys); ok {
				log.Printf("THE ONE KEY FOUND !!! %s", key.Hex())
			}
		}
	}
	return nil
}

// locationRange expands the CLI's location operand into the concrete set
// of fault positions to try: a single position, or all 16 when l == -1.
func locationRange(l int) []int {
	if l != -1 {
		return []int{l}
	}
	locs := make([]int, 16)
	for i := range locs {
		locs[i] = i
	}
	return locs
}

// bruteForce tries every recovered master key against the known
// plaintext/ciphertext pair and returns the first (and, by construction,
// the only) one whose encryption matches.
func bruteForce(plaintext, expected block.State, keys []block.State) (block.State, bool) {
	for _, k := range keys {
		ct, err := aesblock.Encrypt(k, plaintext)
		if err == nil && ct == expected {
			return k, true
		}
	}
	return block.State{}, false
}
