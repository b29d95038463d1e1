//go:build linux || darwin || freebsd || netbsd || openbsd

package main

import "golang.org/x/sys/unix"

// osClockSource reads CLOCK_MONOTONIC directly, bypassing the Go runtime's
// clock path. The clock is probed once up front; clock_gettime only fails
// on argument errors, so a read after a successful probe cannot.
func osClockSource() (timeSource, error) {
	var probe unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &probe); err != nil {
		return timeSource{}, err
	}

	return timeSource{
		name: "clock_gettime",
		unit: "ns",
		read: func() uint64 {
			var ts unix.Timespec
			_ = unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)

			return uint64(ts.Sec)*1e9 + uint64(ts.Nsec)
		},
	}, nil
}
