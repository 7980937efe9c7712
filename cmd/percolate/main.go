// Package main estimates the percolation threshold of an N×N grid from the
// command line. It takes two positional arguments, N and T, runs T
// randomized trials and prints the mean, the mean as a percentage of the
// N² sites, the stddev and the 95% confidence interval.
//
// Usage:
//
//	percolate [-seed s] N T
//
// With no -seed flag a time-based seed is chosen, so consecutive runs
// explore different experiments; pass a fixed seed to reproduce one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/percolate/montecarlo"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-seed s] N T\n", os.Args[0])
	fmt.Fprintln(flag.CommandLine.Output(), "  N  grid dimension (positive integer)")
	fmt.Fprintln(flag.CommandLine.Output(), "  T  number of trials (positive integer)")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)

	seed := flag.Int64("seed", 0, "random seed; 0 selects a time-based seed")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	n, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		log.Fatalf("percolate: invalid grid dimension %q: %v", flag.Arg(0), err)
	}
	trials, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		log.Fatalf("percolate: invalid trial count %q: %v", flag.Arg(1), err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	stats, err := montecarlo.Run(n, trials, montecarlo.WithSeed(s))
	if err != nil {
		log.Fatalf("percolate: %v", err)
	}

	fmt.Print(stats.Report())
}
