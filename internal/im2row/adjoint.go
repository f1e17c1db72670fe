package im2row

import (
	"math"
	"math/rand/v2"

	"github.com/born-ml/im2row/internal/tensor"
)

// AdjointReport is the outcome of a dot-product test of Forward and Backward.
type AdjointReport struct {
	DataType tensor.DataType
	Layout   Layout
	Forward  float64 // <Forward(t), g>
	Backward float64 // <t, Backward(g)>
}

// RelErr returns |Forward-Backward| relative to the larger magnitude.
func (r AdjointReport) RelErr() float64 {
	scale := math.Max(math.Abs(r.Forward), math.Abs(r.Backward))
	if scale == 0 {
		return 0
	}
	return math.Abs(r.Forward-r.Backward) / scale
}

// OK reports whether the two inner products agree within tol.
func (r AdjointReport) OK(tol float64) bool {
	return r.RelErr() <= tol
}

// DefaultTolerance returns a relative tolerance suitable for dt.
func DefaultTolerance(dt tensor.DataType) float64 {
	if dt == tensor.Float32 {
		return 1e-3
	}
	return 1e-10
}

// CheckAdjoint runs the dot-product test on a random tensor t and a random
// patch matrix gradient g: for an adjoint pair <Forward(t), g> equals
// <t, Backward(g)>. Values are drawn from [0, 1) so that the inner products
// do not cancel.
func CheckAdjoint[T tensor.Float](shape tensor.Volume, g Geometry, rng *rand.Rand) (AdjointReport, error) {
	l, err := Prepare(shape, g)
	if err != nil {
		return AdjointReport{}, err
	}

	data := randomBuffer[T](shape.NumElements(), rng)
	grad := randomBuffer[T](l.StackedSize(), rng)

	stacked := make([]T, l.StackedSize())
	Forward(stacked, data, shape, g)

	back := make([]T, shape.NumElements())
	Backward(back, grad, shape, g)

	return AdjointReport{
		DataType: tensor.DataTypeOf[T](),
		Layout:   l,
		Forward:  Dot(stacked, grad),
		Backward: Dot(data, back),
	}, nil
}

func randomBuffer[T tensor.Float](n int, rng *rand.Rand) []T {
	buf := make([]T, n)
	for i := range buf {
		buf[i] = T(rng.Float64())
	}
	return buf
}
