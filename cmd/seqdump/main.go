// main.go -- dump deterministic random bytes to a file, keyed by seed/length/chunk
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

// seqdump writes a file of deterministic pseudo-random bytes produced by a
// single seeded sequence, written chunk_size bytes at a time. Each chunk is
// a separate RandBytes call, so when the chunk size is not a multiple of 8
// the unused tail of each chunk's last block is dropped and the output
// depends on the chunk size as well as on the seed and total length.
package main

import (
	"fmt"
	"os"

	"github.com/opencoff/go-seqrand"
	flag "github.com/opencoff/pflag"
)

func main() {
	var seed int64
	var length int64
	var chunk int64
	var textSeed string

	usage := fmt.Sprintf("%s [options] OUTPUT", os.Args[0])

	flag.Int64VarP(&seed, "seed", "s", 0, "Use `N` as the integer seed")
	flag.StringVarP(&textSeed, "text-seed", "t", "", "Use `S` as a text seed (overrides --seed)")
	flag.Int64VarP(&length, "length", "n", 1<<20, "Write `N` total bytes")
	flag.Int64VarP(&chunk, "chunk", "c", 1<<16, "Write in chunks of `N` bytes")
	flag.Usage = func() {
		fmt.Printf("seqdump - write deterministic pseudo-random bytes to a file\nUsage: %s\n", usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		die("expected exactly one OUTPUT file\nUsage: %s", usage)
	}
	if chunk <= 0 {
		die("chunk size must be > 0")
	}

	var sd seqrand.Seed
	if textSeed != "" {
		sd = seqrand.TextSeed(textSeed)
	} else {
		sd = seqrand.IntSeed(seed)
	}

	f, err := os.Create(args[0])
	if err != nil {
		die("can't create %s: %s", args[0], err)
	}
	defer f.Close()

	e := seqrand.New(sd)
	var written int64
	for written < length {
		n := chunk
		if remaining := length - written; remaining < n {
			n = remaining
		}
		buf := e.RandBytes(int(n))
		if _, err := f.Write(buf); err != nil {
			die("write to %s: %s", args[0], err)
		}
		written += n
	}

	fmt.Printf("%s: wrote %d bytes\n", args[0], written)
}

func die(f string, v ...interface{}) {
	warn(f, v...)
	os.Exit(1)
}

func warn(f string, v ...interface{}) {
	z := fmt.Sprintf("%s: %s", os.Args[0], f)
	s := fmt.Sprintf(z, v...)
	if n := len(s); n == 0 || s[n-1] != '\n' {
		s += "\n"
	}
	os.Stderr.WriteString(s)
}
