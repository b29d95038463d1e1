//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package main

import "time"

// osClockSource falls back to the runtime monotonic clock where
// clock_gettime is unavailable.
func osClockSource() (timeSource, error) {
	epoch := time.Now()

	return timeSource{
		name: "time.Since",
		unit: "ns",
		read: func() uint64 {
			return uint64(time.Since(epoch))
		},
	}, nil
}
