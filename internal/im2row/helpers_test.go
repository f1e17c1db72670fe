package im2row

import (
	"math/rand/v2"

	"github.com/born-ml/im2row/internal/tensor"
)

// referenceForward evaluates the patch matrix entry by entry with an explicit
// bounds test per sample.
func referenceForward[T tensor.Float](data []T, l Layout) []T {
	out := make([]T, l.StackedSize())
	np := l.NumPatches()
	visitSamples(l, func(row, patch, src int) {
		out[row*np+patch] = data[src]
	})
	return out
}

// referenceBackward scatters a patch matrix into a tensor entry by entry.
func referenceBackward[T tensor.Float](stacked []T, l Layout) []T {
	out := make([]T, l.Shape.NumElements())
	np := l.NumPatches()
	visitSamples(l, func(row, patch, src int) {
		out[src] += stacked[row*np+patch]
	})
	return out
}

// visitSamples calls f for every (row, patch) whose sample lies inside the
// tensor, passing the flat tensor index of the sample.
func visitSamples(l Layout, f func(row, patch, src int)) {
	g := l.Geometry
	for row := 0; row < l.NumRows; row++ {
		u := row % g.WindowWidth
		v := (row / g.WindowWidth) % g.WindowHeight
		z := row / (g.WindowWidth * g.WindowHeight)
		for y := 0; y < l.NumPatchesY; y++ {
			for x := 0; x < l.NumPatchesX; x++ {
				xData := x*g.StrideX + u*g.DilateX - g.PadLeft
				yData := y*g.StrideY + v*g.DilateY - g.PadTop
				if l.Shape.Contains(xData, yData) {
					f(row, y*l.NumPatchesX+x, l.Shape.Index(xData, yData, z))
				}
			}
		}
	}
}

// randomCase draws a shape and a geometry that together yield at least one
// patch. Padding can exceed the window so that whole patches lie outside.
func randomCase(rng *rand.Rand) (tensor.Volume, Geometry) {
	for {
		shape := tensor.Volume{
			Width:  1 + rng.IntN(8),
			Height: 1 + rng.IntN(8),
			Depth:  1 + rng.IntN(3),
		}
		g := Geometry{
			WindowWidth:  1 + rng.IntN(4),
			WindowHeight: 1 + rng.IntN(4),
			StrideX:      1 + rng.IntN(3),
			StrideY:      1 + rng.IntN(3),
			PadLeft:      rng.IntN(4),
			PadRight:     rng.IntN(4),
			PadTop:       rng.IntN(4),
			PadBottom:    rng.IntN(4),
			DilateX:      1 + rng.IntN(3),
			DilateY:      1 + rng.IntN(3),
		}
		if _, err := Prepare(shape, g); err == nil {
			return shape, g
		}
	}
}

// integerBuffer fills a buffer with small positive integers so that sums are
// exact in both precisions regardless of order.
func integerBuffer[T tensor.Float](n int, rng *rand.Rand) []T {
	buf := make([]T, n)
	for i := range buf {
		buf[i] = T(1 + rng.IntN(9))
	}
	return buf
}

func filled[T tensor.Float](n int, v T) []T {
	buf := make([]T, n)
	for i := range buf {
		buf[i] = v
	}
	return buf
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
