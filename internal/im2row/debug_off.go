//go:build !im2rowdebug

package im2row

const debugChecks = false
