package im2row

import (
	"github.com/born-ml/im2row/internal/tensor"
)

// Forward stacks the patches of data into the patch matrix stacked.
//
// data holds a tensor of the given shape; stacked must hold exactly
// Layout.StackedSize() elements and is fully overwritten. For row (u, v, z)
// and patch (x, y) the output is data[z, y*StrideY+v*DilateY-PadTop,
// x*StrideX+u*DilateX-PadLeft], or zero when that sample falls in the padding.
//
// Forward does not validate its arguments. Callers that accept geometry from
// outside must check it with Prepare and Layout.CheckBuffers first; builds
// with the im2rowdebug tag assert the preconditions here.
func Forward[T tensor.Float](stacked, data []T, shape tensor.Volume, g Geometry) {
	if debugChecks {
		mustFit(shape, g, len(stacked), len(data))
	}
	l := g.Layout(shape)

	np := l.NumPatches()
	for row := 0; row < l.NumRows; row++ {
		forwardRow(stacked[row*np:(row+1)*np], data, &l, row)
	}
}

// forwardRow fills one row of the patch matrix.
//
// Rows are written as three bands of patch rows: zeros above y0, mixed rows
// (left zeros, samples, right zeros) in [y0,y1) and zeros from y1 on. Along a
// row of patches the sample index advances by StrideX.
func forwardRow[T tensor.Float](out, data []T, l *Layout, row int) {
	s := l.span(row)
	px := l.NumPatchesX
	strideX := l.Geometry.StrideX

	clear(out[:s.y0*px])
	for y := s.y0; y < s.y1; y++ {
		line := out[y*px : (y+1)*px]
		clear(line[:s.x0])

		src := l.origin(&s, y)
		dst := line[s.x0:s.x1]
		if strideX == 1 {
			copy(dst, data[src:src+len(dst)])
		} else {
			for i := range dst {
				dst[i] = data[src]
				src += strideX
			}
		}

		clear(line[s.x1:])
	}
	clear(out[s.y1*px:])
}
