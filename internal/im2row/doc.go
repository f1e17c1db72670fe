// Package im2row implements the patch-extraction transform used to express
// convolution as a matrix product, together with its adjoint.
//
// Forward rearranges a width x height x depth tensor into a patch matrix with
// one row per (window offset, channel) and one column per patch location.
// Backward accumulates a patch matrix back into tensor layout and is the exact
// transpose of Forward. Both support per-axis window size, stride, padding and
// dilation; samples that fall into the padding read as zero in Forward and
// are dropped in Backward.
//
// The kernels hold no state, do not allocate and do not validate. Prepare and
// Layout.CheckBuffers are the calling layer's checks; building with
// -tags im2rowdebug turns them into assertions inside the kernels.
package im2row
