package im2row

import (
	"fmt"

	"github.com/born-ml/im2row/internal/tensor"
)

// mustFit panics when the geometry or the buffers violate the kernel
// preconditions. Kernels call it only in builds with the im2rowdebug tag, and
// before deriving the layout so that a zero stride is reported instead of
// dividing by it.
func mustFit(shape tensor.Volume, g Geometry, stackedLen, dataLen int) {
	l, err := Prepare(shape, g)
	if err == nil {
		err = l.CheckBuffers(stackedLen, dataLen)
	}
	if err != nil {
		panic(fmt.Sprintf("im2row: %v", err))
	}
}
