package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/im2row/im2row"
)

// geometryFlags holds the comma-separated shape and geometry flags shared by
// the layout, check and bench commands.
type geometryFlags struct {
	size   []int
	window []int
	stride []int
	pad    []int
	dilate []int
}

func addGeometryFlags(cmd *cobra.Command) *geometryFlags {
	f := &geometryFlags{}
	flags := cmd.Flags()
	flags.IntSliceVar(&f.size, "size", []int{32, 32, 3}, "Tensor shape W,H,D")
	flags.IntSliceVar(&f.window, "window", []int{3}, "Window size W[,H]")
	flags.IntSliceVar(&f.stride, "stride", []int{1}, "Stride X[,Y]")
	flags.IntSliceVar(&f.pad, "pad", []int{0}, "Padding P, X,Y or L,R,T,B")
	flags.IntSliceVar(&f.dilate, "dilate", []int{1}, "Dilation X[,Y]")
	return f
}

// pair expands a one- or two-element flag into an (x, y) pair.
func pair(name string, vals []int) (int, int, error) {
	switch len(vals) {
	case 1:
		return vals[0], vals[0], nil
	case 2:
		return vals[0], vals[1], nil
	default:
		return 0, 0, fmt.Errorf("--%s: want 1 or 2 values, got %d", name, len(vals))
	}
}

// resolve turns the flags into a shape and a validated geometry.
func (f *geometryFlags) resolve() (im2row.Volume, im2row.Geometry, im2row.Layout, error) {
	var (
		shape im2row.Volume
		g     im2row.Geometry
		err   error
	)

	if len(f.size) != 3 {
		return shape, g, im2row.Layout{}, fmt.Errorf("--size: want W,H,D, got %d values", len(f.size))
	}
	shape = im2row.Volume{Width: f.size[0], Height: f.size[1], Depth: f.size[2]}

	if g.WindowWidth, g.WindowHeight, err = pair("window", f.window); err != nil {
		return shape, g, im2row.Layout{}, err
	}
	if g.StrideX, g.StrideY, err = pair("stride", f.stride); err != nil {
		return shape, g, im2row.Layout{}, err
	}
	if g.DilateX, g.DilateY, err = pair("dilate", f.dilate); err != nil {
		return shape, g, im2row.Layout{}, err
	}

	switch len(f.pad) {
	case 1, 2:
		padX, padY, _ := pair("pad", f.pad)
		g.PadLeft, g.PadRight, g.PadTop, g.PadBottom = padX, padX, padY, padY
	case 4:
		g.PadLeft, g.PadRight, g.PadTop, g.PadBottom = f.pad[0], f.pad[1], f.pad[2], f.pad[3]
	default:
		return shape, g, im2row.Layout{}, fmt.Errorf("--pad: want 1, 2 or 4 values, got %d", len(f.pad))
	}

	l, err := im2row.NewLayout(shape, g)
	if err != nil {
		return shape, g, im2row.Layout{}, err
	}
	return shape, g, l, nil
}
