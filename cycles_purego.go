//go:build purego

package cycles

import "time"

const backendName = "monotonic"

// epoch anchors the purego backend; reads count nanoseconds of monotonic
// time since package initialization.
var epoch = time.Now()

func readCount() uint64 {
	return uint64(time.Since(epoch))
}

func supported() bool {
	return false
}

func invariant() bool {
	return false
}
