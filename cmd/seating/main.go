package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"seat-ca/internal/sims/seating"
)

func main() {
	quiet := flag.Bool("quiet", false, "print only the final layout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-quiet] <layout.txt>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	grid, err := seating.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	report(out, grid, *quiet)
}

// report runs the layout to its fixed point, writing every changed
// generation unless quiet, then the final summary.
func report(w io.Writer, grid *seating.Grid, quiet bool) seating.Report {
	var observe func(seating.Report)
	if !quiet {
		observe = func(r seating.Report) {
			fmt.Fprintf(w, "\n%d occupied: %d\n%s\n", r.Iteration, r.Occupied, r.Grid)
			fmt.Fprintln(w, "---")
		}
	}

	final := seating.Run(grid, observe)
	fmt.Fprintf(w, "n: %d, num_occ: %d\n%s\n", final.Iteration, final.Occupied, final.Grid)
	return final
}
