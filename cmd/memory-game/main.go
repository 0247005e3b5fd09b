package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"seat-ca/internal/sims/memory"
)

var errUsage = errors.New("usage: memory-game [-v] <n,n,...> <rounds>")

func main() {
	log.SetFlags(0)
	err := run(os.Stdout, os.Args[1:])
	switch {
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	case err != nil:
		log.Fatal(err)
	}
}

// run plays the game described by args and writes the summary line to w.
func run(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("memory-game", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "log the starting numbers and elapsed time")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errUsage
	}

	start, err := memory.ParseStart(fs.Arg(0))
	if err != nil {
		return err
	}
	rounds, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("invalid round target %q: %w", fs.Arg(1), err)
	}

	if *verbose {
		log.Printf("nums: %v", start)
	}
	began := time.Now()
	last, err := memory.Play(start, rounds)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("played %d rounds in %s", rounds, time.Since(began).Round(time.Millisecond))
	}

	_, err = fmt.Fprintf(w, "After %d, last_spoken=%d\n", rounds, last)
	return err
}
