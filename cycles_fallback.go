//go:build !amd64 && !386 && !arm64 && !purego

package cycles

import _ "unsafe" // go:linkname

const backendName = "nanotime"

// nanotime is the Go runtime's monotonic clock: nanoseconds since an
// arbitrary start point, unaffected by wall-clock adjustments.
//
//go:noescape
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// readCount counts nanoseconds rather than cycles on platforms without a
// readable cycle counter.
func readCount() uint64 {
	return uint64(nanotime())
}

func supported() bool {
	return false
}

func invariant() bool {
	return false
}
