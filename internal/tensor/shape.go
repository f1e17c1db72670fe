package tensor

import "fmt"

// Volume is the shape of a 3-D tensor stored as a flat buffer.
//
// Element (x, y, z) lives at ((z*Height + y)*Width + x): x varies fastest,
// then y, then the depth channel z.
type Volume struct {
	Width  int
	Height int
	Depth  int
}

// NumElements returns the total number of elements in the tensor.
func (v Volume) NumElements() int {
	return v.Width * v.Height * v.Depth
}

// PlaneSize returns the number of elements in one depth channel.
func (v Volume) PlaneSize() int {
	return v.Width * v.Height
}

// Index returns the flat offset of element (x, y, z).
func (v Volume) Index(x, y, z int) int {
	return (z*v.Height+y)*v.Width + x
}

// Contains reports whether (x, y) lies inside one channel plane.
func (v Volume) Contains(x, y int) bool {
	return x >= 0 && x < v.Width && y >= 0 && y < v.Height
}

// Validate checks if the volume is valid (all dimensions > 0).
func (v Volume) Validate() error {
	dims := [...]int{v.Width, v.Height, v.Depth}
	for i, dim := range dims {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// String formats the volume as WxHxD.
func (v Volume) String() string {
	return fmt.Sprintf("%dx%dx%d", v.Width, v.Height, v.Depth)
}
