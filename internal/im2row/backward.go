package im2row

import (
	"github.com/born-ml/im2row/internal/tensor"
)

// Backward is the adjoint of Forward: it zeroes data and then adds every entry
// of the patch matrix stacked to the tensor element it was sampled from.
//
// Entries that Forward would have read from the padding contribute nothing.
// Because overlapping windows sample the same element several times, the
// result is a sum rather than a copy. Preconditions are those of Forward.
func Backward[T tensor.Float](data, stacked []T, shape tensor.Volume, g Geometry) {
	if debugChecks {
		mustFit(shape, g, len(stacked), len(data))
	}
	l := g.Layout(shape)

	clear(data[:shape.NumElements()])

	np := l.NumPatches()
	for row := 0; row < l.NumRows; row++ {
		backwardRow(data, stacked[row*np:(row+1)*np], &l, row)
	}
}

// backwardRow accumulates one row of the patch matrix into data.
func backwardRow[T tensor.Float](data, in []T, l *Layout, row int) {
	s := l.span(row)
	px := l.NumPatchesX
	strideX := l.Geometry.StrideX

	for y := s.y0; y < s.y1; y++ {
		dst := l.origin(&s, y)
		for _, val := range in[y*px+s.x0 : y*px+s.x1] {
			data[dst] += val
			dst += strideX
		}
	}
}

// backwardChannel zeroes channel z of data and accumulates every row that
// samples from it, in row order.
func backwardChannel[T tensor.Float](data, stacked []T, l *Layout, z int) {
	plane := l.Shape.PlaneSize()
	clear(data[z*plane : (z+1)*plane])

	np := l.NumPatches()
	rows := l.RowsPerChannel()
	for row := z * rows; row < (z+1)*rows; row++ {
		backwardRow(data, stacked[row*np:(row+1)*np], l, row)
	}
}
