package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/im2row/im2row"
)

// benchResult is the timing of one operation in one mode.
type benchResult struct {
	op      string
	mode    string
	perIter time.Duration
}

func newBenchCmd() *cobra.Command {
	var (
		iterations int
		dtype      string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time forward and backward, sequential and parallel",
		Args:  cobra.NoArgs,
	}
	flags := addGeometryFlags(cmd)
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 20, "Iterations per measurement")
	cmd.Flags().StringVar(&dtype, "dtype", "float32", "Element type (float32 or float64)")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		shape, g, l, err := flags.resolve()
		if err != nil {
			return err
		}
		if iterations < 1 {
			return fmt.Errorf("--iterations must be positive, got %d", iterations)
		}
		dt, err := im2row.ParseDataType(dtype)
		if err != nil {
			return err
		}

		cfg := im2row.DefaultParallelConfig()
		slog.Debug("bench", "shape", shape, "geometry", g, "dtype", dt, "workers", cfg.NumWorkers, "parallel", cfg.Enabled)

		var results []benchResult
		switch dt {
		case im2row.Float32:
			results = runBench[float32](shape, g, l, cfg, iterations)
		default:
			results = runBench[float64](shape, g, l, cfg, iterations)
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"OP", "MODE", "PER ITER", "ELEMENTS/S"})
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetNoWhiteSpace(true)
		table.SetTablePadding("    ")
		for _, r := range results {
			rate := "-"
			if r.perIter > 0 {
				rate = fmt.Sprintf("%.3g", float64(l.StackedSize())/r.perIter.Seconds())
			}
			table.Append([]string{r.op, r.mode, r.perIter.String(), rate})
		}
		table.Render()
		return nil
	}

	return cmd
}

func runBench[T im2row.Float](shape im2row.Volume, g im2row.Geometry, l im2row.Layout, cfg im2row.ParallelConfig, iterations int) []benchResult {
	rng := rand.New(rand.NewPCG(1, 2))
	data := make([]T, shape.NumElements())
	for i := range data {
		data[i] = T(rng.Float64())
	}
	stacked := make([]T, l.StackedSize())

	measure := func(op, mode string, f func()) benchResult {
		start := time.Now()
		for i := 0; i < iterations; i++ {
			f()
		}
		r := benchResult{op: op, mode: mode, perIter: time.Since(start) / time.Duration(iterations)}
		slog.Debug("measured", "op", op, "mode", mode, "per_iter", r.perIter)
		return r
	}

	return []benchResult{
		measure("forward", "sequential", func() { im2row.ForwardUnchecked(stacked, data, shape, g) }),
		measure("forward", "parallel", func() { _ = im2row.ForwardParallel(stacked, data, shape, g, cfg) }),
		measure("backward", "sequential", func() { im2row.BackwardUnchecked(data, stacked, shape, g) }),
		measure("backward", "parallel", func() { _ = im2row.BackwardParallel(data, stacked, shape, g, cfg) }),
	}
}
