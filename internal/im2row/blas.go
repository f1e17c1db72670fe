package im2row

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/born-ml/im2row/internal/tensor"
)

// General32 returns a BLAS view of a float32 patch matrix, ready to be passed
// to blas32.Gemm by the caller. The view shares stacked.
func (l Layout) General32(stacked []float32) blas32.General {
	np := l.NumPatches()
	return blas32.General{Rows: l.NumRows, Cols: np, Stride: np, Data: stacked}
}

// General64 is the float64 counterpart of General32.
func (l Layout) General64(stacked []float64) blas64.General {
	np := l.NumPatches()
	return blas64.General{Rows: l.NumRows, Cols: np, Stride: np, Data: stacked}
}

// Dot returns the inner product of two equally long buffers, accumulated by
// gonum's BLAS for the matching precision.
func Dot[T tensor.Float](a, b []T) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("im2row: dot of buffers with %d and %d elements", len(a), len(b)))
	}

	switch a := any(a).(type) {
	case []float32:
		b := any(b).([]float32)
		return float64(blas32.Dot(
			blas32.Vector{N: len(a), Data: a, Inc: 1},
			blas32.Vector{N: len(b), Data: b, Inc: 1},
		))
	case []float64:
		b := any(b).([]float64)
		return blas64.Dot(
			blas64.Vector{N: len(a), Data: a, Inc: 1},
			blas64.Vector{N: len(b), Data: b, Inc: 1},
		)
	}

	// Named element types.
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
