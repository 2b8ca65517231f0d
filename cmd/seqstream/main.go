// main.go -- stream deterministic random bytes to stdout until the reader goes away
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

// seqstream streams an endless sequence of deterministic pseudo-random
// bytes to standard output, one cascaded chunk at a time, until the reader
// closes the pipe. A SIGPIPE (a write against a closed stdout) ends the
// program with exit code 0, not an error.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/opencoff/go-seqrand"
	flag "github.com/opencoff/pflag"
)

const chunkSize = 1 << 20

func main() {
	var seed int64
	var textSeed string

	usage := fmt.Sprintf("%s [options]", os.Args[0])

	flag.Int64VarP(&seed, "seed", "s", 0, "Use `N` as the integer seed")
	flag.StringVarP(&textSeed, "text-seed", "t", "", "Use `S` as a text seed (overrides --seed)")
	flag.Usage = func() {
		fmt.Printf("seqstream - stream deterministic pseudo-random bytes to stdout\nUsage: %s\n", usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	var sd seqrand.Seed
	if textSeed != "" {
		sd = seqrand.TextSeed(textSeed)
	} else {
		sd = seqrand.IntSeed(seed)
	}

	// With SIGPIPE ignored, a write to a closed stdout returns EPIPE instead
	// of the runtime killing the process with the signal.
	signal.Ignore(syscall.SIGPIPE)

	e := seqrand.New(sd)
	for {
		g := e.Cascade()
		buf := e.RandBytes(chunkSize)
		g.Close()
		if _, err := os.Stdout.Write(buf); err != nil {
			if isBrokenPipe(err) {
				return
			}
			die("write: %s", err)
		}
	}
}

func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
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
