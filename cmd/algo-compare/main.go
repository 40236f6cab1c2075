package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"conway/internal/compare"
)

func main() {
	steps := flag.Int("steps", 10, "generations to run per board")
	workers := flag.Int("workers", runtime.NumCPU(), "boards compared concurrently")
	seed := flag.Int64("seed", 42, "base seed; each board uses seed+size")
	sizes := flag.String("sizes", "", "comma separated board sizes (default 3,4,8,...,2048)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	list, err := parseSizes(*sizes)
	if err != nil {
		logger.Error("invalid sizes", slog.String("error", err.Error()))
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Comparing naive and frontier (%d workers, %d steps)\n", *workers, *steps)
	start := time.Now()
	results, err := compare.Run(ctx, compare.Options{
		Sizes:   list,
		Steps:   *steps,
		Workers: *workers,
		Seed:    *seed,
	})
	if err != nil {
		logger.Error("comparison failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("\n%6s %12s %12s %8s %10s\n", "size", "naive", "frontier", "speedup", "live")
	for _, res := range results {
		fmt.Printf("%6d %12s %12s %7.2fx %10d\n",
			res.Size, res.Naive.Round(time.Microsecond), res.Frontier.Round(time.Microsecond), res.Speedup(), res.Live)
	}
	fmt.Printf("\nAll boards agree (elapsed %s)\n", time.Since(start).Round(time.Millisecond))
}

func parseSizes(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", field, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("size %d must not be negative", n)
		}
		out = append(out, n)
	}
	return out, nil
}
