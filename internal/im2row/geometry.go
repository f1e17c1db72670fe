package im2row

import (
	"errors"
	"fmt"

	"github.com/born-ml/im2row/internal/tensor"
)

// Validation errors reported by the calling layer. The transform kernels never
// return them; see Geometry.Validate and Layout.CheckBuffers.
var (
	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrNoPatches       = errors.New("geometry yields no patches")
	ErrBufferSize      = errors.New("buffer size mismatch")
)

// Geometry describes how patches are sampled from a tensor.
//
// Window sizes, strides and dilations must be >= 1; padding must be >= 0.
// Padding is virtual: the input is never copied into a larger buffer.
type Geometry struct {
	WindowWidth  int
	WindowHeight int
	StrideX      int
	StrideY      int
	PadLeft      int
	PadRight     int
	PadTop       int
	PadBottom    int
	DilateX      int
	DilateY      int
}

// Uniform returns a geometry with a square window and the same stride,
// padding and dilation on every side.
func Uniform(window, stride, pad, dilate int) Geometry {
	return Geometry{
		WindowWidth:  window,
		WindowHeight: window,
		StrideX:      stride,
		StrideY:      stride,
		PadLeft:      pad,
		PadRight:     pad,
		PadTop:       pad,
		PadBottom:    pad,
		DilateX:      dilate,
		DilateY:      dilate,
	}
}

// Validate checks the parameter ranges. It does not look at a tensor shape;
// use Layout.Validate for the patch counts.
func (g Geometry) Validate() error {
	if g.WindowWidth < 1 || g.WindowHeight < 1 {
		return fmt.Errorf("%w: window %dx%d must be positive", ErrInvalidGeometry, g.WindowWidth, g.WindowHeight)
	}
	if g.StrideX < 1 || g.StrideY < 1 {
		return fmt.Errorf("%w: stride %dx%d must be positive", ErrInvalidGeometry, g.StrideX, g.StrideY)
	}
	if g.DilateX < 1 || g.DilateY < 1 {
		return fmt.Errorf("%w: dilation %dx%d must be positive", ErrInvalidGeometry, g.DilateX, g.DilateY)
	}
	if g.PadLeft < 0 || g.PadRight < 0 || g.PadTop < 0 || g.PadBottom < 0 {
		return fmt.Errorf("%w: padding [%d %d %d %d] must be non-negative",
			ErrInvalidGeometry, g.PadLeft, g.PadRight, g.PadTop, g.PadBottom)
	}
	return nil
}

// String formats the geometry the way the CLI flags spell it.
func (g Geometry) String() string {
	return fmt.Sprintf("window=%dx%d stride=%dx%d pad=[%d %d %d %d] dilate=%dx%d",
		g.WindowWidth, g.WindowHeight, g.StrideX, g.StrideY,
		g.PadLeft, g.PadRight, g.PadTop, g.PadBottom, g.DilateX, g.DilateY)
}

// Layout holds the quantities derived from a Geometry and a tensor shape.
//
// The patch matrix has NumRows rows and NumPatches() columns, stored
// row-major. Row r corresponds to the window offset (u, v) and channel z with
// r = u + v*WindowWidth + z*WindowWidth*WindowHeight; column c corresponds
// to the patch (x, y) with c = x + y*NumPatchesX.
type Layout struct {
	Shape    tensor.Volume
	Geometry Geometry

	WindowExtentX int // Footprint of a dilated window.
	WindowExtentY int
	NumPatchesX   int
	NumPatchesY   int
	NumRows       int
}

// Layout derives the patch matrix layout for a tensor of the given shape.
//
// Patch counts use truncating integer division. The result is meaningful only
// when the padded extent covers at least one window; Layout.Validate checks
// that.
func (g Geometry) Layout(shape tensor.Volume) Layout {
	extentX := (g.WindowWidth-1)*g.DilateX + 1
	extentY := (g.WindowHeight-1)*g.DilateY + 1
	return Layout{
		Shape:         shape,
		Geometry:      g,
		WindowExtentX: extentX,
		WindowExtentY: extentY,
		NumPatchesX:   (shape.Width+g.PadLeft+g.PadRight-extentX)/g.StrideX + 1,
		NumPatchesY:   (shape.Height+g.PadTop+g.PadBottom-extentY)/g.StrideY + 1,
		NumRows:       g.WindowWidth * g.WindowHeight * shape.Depth,
	}
}

// NumPatches returns the number of columns of the patch matrix.
func (l Layout) NumPatches() int {
	return l.NumPatchesX * l.NumPatchesY
}

// StackedSize returns the number of elements of the patch matrix.
func (l Layout) StackedSize() int {
	return l.NumRows * l.NumPatches()
}

// RowsPerChannel returns how many consecutive rows belong to one depth channel.
func (l Layout) RowsPerChannel() int {
	return l.Geometry.WindowWidth * l.Geometry.WindowHeight
}

// Validate checks the geometry, the tensor shape and that the padded input is
// at least as large as one dilated window along both axes.
func (l Layout) Validate() error {
	if err := l.Geometry.Validate(); err != nil {
		return err
	}
	if err := l.Shape.Validate(); err != nil {
		return fmt.Errorf("%w: shape %v: %w", ErrInvalidGeometry, l.Shape, err)
	}
	g := l.Geometry
	if padded := l.Shape.Width + g.PadLeft + g.PadRight; padded < l.WindowExtentX {
		return fmt.Errorf("%w: padded width %d is smaller than window extent %d", ErrNoPatches, padded, l.WindowExtentX)
	}
	if padded := l.Shape.Height + g.PadTop + g.PadBottom; padded < l.WindowExtentY {
		return fmt.Errorf("%w: padded height %d is smaller than window extent %d", ErrNoPatches, padded, l.WindowExtentY)
	}
	return nil
}

// CheckBuffers verifies that a patch matrix and a tensor buffer have exactly
// the lengths the layout requires.
func (l Layout) CheckBuffers(stackedLen, dataLen int) error {
	if want := l.StackedSize(); stackedLen != want {
		return fmt.Errorf("%w: patch matrix has %d elements, layout %dx%d needs %d",
			ErrBufferSize, stackedLen, l.NumRows, l.NumPatches(), want)
	}
	if want := l.Shape.NumElements(); dataLen != want {
		return fmt.Errorf("%w: tensor has %d elements, shape %v needs %d",
			ErrBufferSize, dataLen, l.Shape, want)
	}
	return nil
}

// Prepare derives and validates the layout in one step.
func Prepare(shape tensor.Volume, g Geometry) (Layout, error) {
	if err := g.Validate(); err != nil {
		return Layout{}, err
	}
	l := g.Layout(shape)
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}
