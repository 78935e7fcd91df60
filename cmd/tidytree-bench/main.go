package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/webfolk/tidytree"
)

const usage = `tidytree-bench - Parse an input repeatedly and write a profile

Usage:
  tidytree-bench [options] <html-file>

Options:
  -iterations int    Number of parsing iterations (default: 2000)
  -profile string    Profile type: cpu, mem (default: cpu)
  -out string        Profile output file (default: tidytree_<type>.prof)

The resulting profile can be inspected with:
  go tool pprof tidytree_cpu.prof
`

func main() {
	var (
		iterations = flag.Int("iterations", 2000, "Number of parsing iterations")
		profile    = flag.String("profile", "cpu", "Profile type: cpu, mem")
		out        = flag.String("out", "", "Profile output file")
	)

	flag.Usage = func() { fmt.Print(usage) }
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: input file argument required\n\n")
		fmt.Print(usage)
		os.Exit(1)
	}

	if *profile != "cpu" && *profile != "mem" {
		fmt.Fprintf(os.Stderr, "Error: profile must be 'cpu' or 'mem'\n")
		os.Exit(1)
	}

	if *out == "" {
		*out = fmt.Sprintf("tidytree_%s.prof", *profile)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(data, *iterations, *profile, *out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(data []byte, iterations int, profileType, out string) error {
	ctx := context.Background()
	parser := tidytree.NewParser()

	start := time.Now()
	switch profileType {
	case "cpu":
		if err := cpuProfile(ctx, parser, data, iterations, out); err != nil {
			return err
		}
	case "mem":
		if err := memProfile(ctx, parser, data, iterations, out); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("parsed %d times in %s (%s per parse)\n",
		iterations, elapsed, elapsed/time.Duration(iterations))
	fmt.Printf("profile written to %s\n", out)
	return nil
}

func cpuProfile(ctx context.Context, parser *tidytree.Parser, data []byte, iterations int, out string) error {
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return err
	}
	defer pprof.StopCPUProfile()

	for i := range iterations {
		if _, err := parser.Parse(ctx, data); err != nil {
			return fmt.Errorf("parse failed at iteration %d: %w", i, err)
		}
	}
	return nil
}

func memProfile(ctx context.Context, parser *tidytree.Parser, data []byte, iterations int, out string) error {
	// keep every document alive so the heap profile shows the tree
	// allocations
	docs := make([]*tidytree.Document, 0, iterations)
	for range iterations {
		doc, err := parser.Parse(ctx, data)
		if err != nil {
			return fmt.Errorf("parse failed: %w", err)
		}
		docs = append(docs, doc)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return err
	}
	runtime.KeepAlive(docs)
	return nil
}
