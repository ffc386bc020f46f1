// Command skyline computes the skyline of a dataset, in either the
// noiseless or the noisy model.
//
// Usage:
//
//	skyline [-size N -dims D] <datasetfile> noisless
//	skyline [-size N -dims D] <datasetfile> noisy <error_probability> <tolerance>
//
// Without -size/-dims, datasetfile is read as text (CSV or whitespace
// separated, one item per line). With both set, it is read as a binary
// row-major stream of IEEE-754 float64 values.
//
// Exit codes: 0 success, 1 argument-validation failure, 2 I/O error.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/emilmelnikov/noisy-skylines/dataset"
	"github.com/emilmelnikov/noisy-skylines/loader"
	"github.com/emilmelnikov/noisy-skylines/noiseless"
	"github.com/emilmelnikov/noisy-skylines/oracle"
	skyline "github.com/emilmelnikov/noisy-skylines"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("skyline", flag.ContinueOnError)
	fs.SetOutput(stderr)
	size := fs.Int("size", 0, "item count, for binary dataset files")
	dims := fs.Int("dims", 0, "item dimension, for binary dataset files")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  skyline [-size N -dims D] <datasetfile> noisless")
		fmt.Fprintln(stderr, "  skyline [-size N -dims D] <datasetfile> noisy <error_probability> <tolerance>")
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) != 2 && len(rest) != 4 {
		fs.Usage()
		return 1
	}

	datasetFile := rest[0]
	mode := rest[1]
	if mode != "noisless" && mode != "noisy" {
		fmt.Fprintln(stderr, "skyline: mode must be 'noisless' or 'noisy'")
		return 1
	}
	if mode == "noisless" && len(rest) != 2 {
		fmt.Fprintln(stderr, "skyline: noisless mode takes no extra arguments")
		return 1
	}
	if mode == "noisy" && len(rest) != 4 {
		fmt.Fprintln(stderr, "skyline: noisy mode requires error_probability and tolerance")
		return 1
	}

	var errorProbability, tolerance float64
	if mode == "noisy" {
		var err error
		errorProbability, err = strconv.ParseFloat(rest[2], 64)
		if err != nil || !inRange(errorProbability) {
			fmt.Fprintln(stderr, "skyline: error_probability must be a decimal in [0.0, 0.5)")
			return 1
		}
		tolerance, err = strconv.ParseFloat(rest[3], 64)
		if err != nil || !inRange(tolerance) {
			fmt.Fprintln(stderr, "skyline: tolerance must be a decimal in [0.0, 0.5)")
			return 1
		}
	}

	ds, err := readDataset(datasetFile, *size, *dims)
	if err != nil {
		fmt.Fprintf(stderr, "skyline: %v\n", err)
		return 2
	}

	start := time.Now()
	var result []int
	var comparisons uint64
	if mode == "noisless" {
		result = noiseless.Skyline(ds)
	} else {
		o, err := oracle.New(ds, errorProbability)
		if err != nil {
			fmt.Fprintf(stderr, "skyline: %v\n", err)
			return 1
		}
		result = skyline.FullSkyline(o, tolerance)
		comparisons = o.ComparisonCount()
	}
	elapsed := time.Since(start)

	sort.Ints(result)
	if err := loader.WriteSkyline(stdout, result); err != nil {
		fmt.Fprintf(stderr, "skyline: %v\n", err)
		return 2
	}

	fmt.Fprintf(stderr, "%d %d\n", elapsed.Milliseconds(), comparisons)
	return 0
}

func inRange(v float64) bool {
	return v >= 0 && v < 0.5
}

func readDataset(path string, size, dims int) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows [][]float64
	if size > 0 && dims > 0 {
		rows, err = loader.ReadBinary(f, size, dims)
	} else {
		rows, err = loader.ReadText(f)
	}
	if err != nil {
		return nil, err
	}

	return dataset.New(rows)
}
