//go:build im2rowdebug

package im2row

// debugChecks enables precondition assertions in the transform kernels.
const debugChecks = true
