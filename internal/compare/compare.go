// Package compare times the naive and frontier life algorithms against each
// other on identical boards and checks that they agree.
package compare

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"conway/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

// ErrMismatch is returned when the algorithms disagree on a board.
var ErrMismatch = errors.New("algorithms disagree")

// DefaultSizes are the board sizes compared when none are given.
var DefaultSizes = []int{3, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048}

// Options controls a comparison run.
type Options struct {
	Sizes   []int
	Steps   int
	Workers int
	Seed    int64
}

// Result holds the timings for one board size.
type Result struct {
	Size     int
	Steps    int
	Naive    time.Duration
	Frontier time.Duration
	Live     int
	Hex      string
}

// Speedup returns how many times faster the frontier run was.
func (r Result) Speedup() float64 {
	if r.Frontier <= 0 {
		return 0
	}
	return float64(r.Naive) / float64(r.Frontier)
}

// Run compares both algorithms for every size in opts, at most opts.Workers
// sizes at a time. Results are sorted by size.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	sizes := opts.Sizes
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	steps := max(opts.Steps, 1)

	results := make([]Result, len(sizes))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, size := range sizes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runSize(size, steps, opts.Seed+int64(size))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Size < results[j].Size })
	return results, nil
}

func runSize(size, steps int, seed int64) (Result, error) {
	start := life.NewGrid(size)
	start.RandomizeSeed(seed)

	naive := start.Clone()
	naiveTime := timeSteps(life.Naive, naive, steps)

	frontier := start.Clone()
	frontierTime := timeSteps(life.Frontier, frontier, steps)

	hex := naive.HexString()
	if other := frontier.HexString(); other != hex {
		return Result{}, fmt.Errorf("size %d after %d steps: %w", size, steps, ErrMismatch)
	}
	return Result{
		Size:     size,
		Steps:    steps,
		Naive:    naiveTime,
		Frontier: frontierTime,
		Live:     naive.LiveCount(),
		Hex:      hex,
	}, nil
}

func timeSteps(algo life.Algorithm, g *life.Grid, steps int) time.Duration {
	begin := time.Now()
	for i := 0; i < steps; i++ {
		algo.Next(g)
	}
	return time.Since(begin)
}
