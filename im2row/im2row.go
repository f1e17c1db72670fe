// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package im2row

import (
	"math/rand/v2"

	internal "github.com/born-ml/im2row/internal/im2row"
	"github.com/born-ml/im2row/internal/parallel"
	"github.com/born-ml/im2row/internal/tensor"
)

// Type aliases for public API

// Float is the constraint for supported element types: float32 and float64.
type Float = tensor.Float

// DataType represents the element type of a buffer at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// ParseDataType parses "float32"/"f32" or "float64"/"f64".
func ParseDataType(s string) (DataType, error) {
	return tensor.ParseDataType(s)
}

// Volume is the shape of a 3-D tensor: Width x Height x Depth, x fastest.
type Volume = tensor.Volume

// Geometry describes window size, stride, padding and dilation.
type Geometry = internal.Geometry

// Layout holds the derived patch matrix dimensions.
type Layout = internal.Layout

// ParallelConfig controls the parallel variants.
type ParallelConfig = parallel.Config

// AdjointReport is the result of CheckAdjoint.
type AdjointReport = internal.AdjointReport

// Errors returned by the checked entry points.
var (
	ErrInvalidGeometry = internal.ErrInvalidGeometry
	ErrNoPatches       = internal.ErrNoPatches
	ErrBufferSize      = internal.ErrBufferSize
)

// Uniform returns a square-window geometry with the same stride, padding and
// dilation on both axes.
func Uniform(window, stride, pad, dilate int) Geometry {
	return internal.Uniform(window, stride, pad, dilate)
}

// NewLayout validates g against shape and returns the derived layout.
func NewLayout(shape Volume, g Geometry) (Layout, error) {
	return internal.Prepare(shape, g)
}

// DefaultParallelConfig returns the parallel configuration from the
// IM2ROW_* environment variables.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

func prepare(shape Volume, g Geometry, stackedLen, dataLen int) error {
	l, err := internal.Prepare(shape, g)
	if err != nil {
		return err
	}
	return l.CheckBuffers(stackedLen, dataLen)
}

// Forward fills the patch matrix stacked from the tensor data.
// A nil error is the only success status.
func Forward[T Float](stacked, data []T, shape Volume, g Geometry) error {
	if err := prepare(shape, g, len(stacked), len(data)); err != nil {
		return err
	}
	internal.Forward(stacked, data, shape, g)
	return nil
}

// Backward overwrites data with the adjoint of Forward applied to stacked.
func Backward[T Float](data, stacked []T, shape Volume, g Geometry) error {
	if err := prepare(shape, g, len(stacked), len(data)); err != nil {
		return err
	}
	internal.Backward(data, stacked, shape, g)
	return nil
}

// ForwardParallel is Forward with rows spread over goroutines.
func ForwardParallel[T Float](stacked, data []T, shape Volume, g Geometry, cfg ParallelConfig) error {
	if err := prepare(shape, g, len(stacked), len(data)); err != nil {
		return err
	}
	internal.ForwardParallel(stacked, data, shape, g, cfg)
	return nil
}

// BackwardParallel is Backward with depth channels spread over goroutines.
func BackwardParallel[T Float](data, stacked []T, shape Volume, g Geometry, cfg ParallelConfig) error {
	if err := prepare(shape, g, len(stacked), len(data)); err != nil {
		return err
	}
	internal.BackwardParallel(data, stacked, shape, g, cfg)
	return nil
}

// ForwardUnchecked runs Forward without validation.
func ForwardUnchecked[T Float](stacked, data []T, shape Volume, g Geometry) {
	internal.Forward(stacked, data, shape, g)
}

// BackwardUnchecked runs Backward without validation.
func BackwardUnchecked[T Float](data, stacked []T, shape Volume, g Geometry) {
	internal.Backward(data, stacked, shape, g)
}

// Stack allocates a patch matrix and fills it from data.
func Stack[T Float](data []T, shape Volume, g Geometry) ([]T, Layout, error) {
	l, err := internal.Prepare(shape, g)
	if err != nil {
		return nil, Layout{}, err
	}
	stacked := make([]T, l.StackedSize())
	if err := l.CheckBuffers(len(stacked), len(data)); err != nil {
		return nil, Layout{}, err
	}
	internal.Forward(stacked, data, shape, g)
	return stacked, l, nil
}

// Unstack allocates a tensor and accumulates the patch matrix stacked into it.
func Unstack[T Float](stacked []T, shape Volume, g Geometry) ([]T, error) {
	l, err := internal.Prepare(shape, g)
	if err != nil {
		return nil, err
	}
	data := make([]T, shape.NumElements())
	if err := l.CheckBuffers(len(stacked), len(data)); err != nil {
		return nil, err
	}
	internal.Backward(data, stacked, shape, g)
	return data, nil
}

// DefaultTolerance returns the relative tolerance CheckAdjoint results are
// held to for dt.
func DefaultTolerance(dt DataType) float64 {
	return internal.DefaultTolerance(dt)
}

// CheckAdjoint runs the dot-product test <Forward(t), g> == <t, Backward(g)>
// on random inputs drawn from rng.
func CheckAdjoint[T Float](shape Volume, g Geometry, rng *rand.Rand) (AdjointReport, error) {
	return internal.CheckAdjoint[T](shape, g, rng)
}
