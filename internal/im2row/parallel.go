package im2row

import (
	"github.com/born-ml/im2row/internal/parallel"
	"github.com/born-ml/im2row/internal/tensor"
)

// ForwardParallel is Forward with rows distributed over goroutines.
// Every row writes a disjoint slice of stacked, so no synchronization is
// needed and the result is identical to Forward.
func ForwardParallel[T tensor.Float](stacked, data []T, shape tensor.Volume, g Geometry, cfg parallel.Config) {
	if debugChecks {
		mustFit(shape, g, len(stacked), len(data))
	}
	l := g.Layout(shape)

	np := l.NumPatches()
	parallel.ForRange(l.NumRows, func(start, end int) {
		for row := start; row < end; row++ {
			forwardRow(stacked[row*np:(row+1)*np], data, &l, row)
		}
	}, cfg.WithItemCost(np))
}

// BackwardParallel is Backward with depth channels distributed over
// goroutines. Rows of different channels never touch the same tensor element;
// rows of one channel run sequentially in row order, so the sums are
// bit-identical to Backward.
func BackwardParallel[T tensor.Float](data, stacked []T, shape tensor.Volume, g Geometry, cfg parallel.Config) {
	if debugChecks {
		mustFit(shape, g, len(stacked), len(data))
	}
	l := g.Layout(shape)

	parallel.For(shape.Depth, func(z int) {
		backwardChannel(data, stacked, &l, z)
	}, cfg.WithItemCost(l.RowsPerChannel()*l.NumPatches()))
}
