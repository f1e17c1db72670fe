// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package im2row provides the patch-extraction transform behind
// convolution-as-matrix-multiplication, and its adjoint.
//
// # Overview
//
// Forward rearranges a width x height x depth tensor into a patch matrix:
//   - One row per window offset (u, v) and channel z
//   - One column per patch location, in (y, x) order
//   - Samples falling into the padding read as zero
//
// Backward scatters a patch matrix of gradients back into tensor layout,
// summing every entry that Forward read from the same element.
//
// # Basic Usage
//
//	shape := im2row.Volume{Width: 32, Height: 32, Depth: 3}
//	g := im2row.Uniform(3, 1, 1, 1) // 3x3 window, stride 1, same padding
//
//	stacked, layout, err := im2row.Stack(data, shape, g)
//	if err != nil {
//	    return err
//	}
//	// layout.General32(stacked) is a blas32.General ready for Gemm.
//
// # Checked and Unchecked Entry Points
//
// Forward, Backward and their parallel variants validate the geometry and
// the buffer sizes and return an error wrapping ErrInvalidGeometry,
// ErrNoPatches or ErrBufferSize. The Unchecked variants skip validation for
// callers that already did it; violating their preconditions panics or
// produces garbage.
package im2row
