// Package parallel provides the parallel-for used by the transform drivers.
package parallel

import (
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/im2row/internal/envconfig"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of goroutines running at once.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns defaults from the IM2ROW_* environment.
//
// MinChunkSize is expressed in element operations; callers whose items are
// larger rescale it with WithItemCost.
func DefaultConfig() Config {
	n := envconfig.NumThreads()
	return Config{
		Enabled:      n > 1 && envconfig.Parallel(true),
		NumWorkers:   n,
		MinChunkSize: max(1, int(envconfig.MinChunk())),
	}
}

// Sequential returns a config that always runs on the calling goroutine.
func Sequential() Config {
	return Config{NumWorkers: 1, MinChunkSize: 1}
}

// WithItemCost returns a copy of cfg whose MinChunkSize is measured in items
// that each cost the given number of element operations.
func (c Config) WithItemCost(cost int) Config {
	if cost > 1 {
		c.MinChunkSize = max(1, (c.MinChunkSize+cost-1)/cost)
	}
	return c
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}

// ForRange splits [0, n) into contiguous chunks and calls f once per chunk.
// Chunks never overlap and together cover [0, n) exactly once.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < 2*max(cfg.MinChunkSize, 1) {
		// Sequential fallback.
		f(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			f(start, end)
			return nil
		})
	}
	_ = g.Wait()
}
