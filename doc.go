// Package cycles reads the processor's free-running cycle counter.
//
// Read returns a snapshot of the counter as a single 64-bit value: the
// timestamp counter (RDTSC) on x86, the virtual counter (CNTVCT_EL0) on
// arm64. Snapshots are relative to an arbitrary, platform-defined reference
// point, typically processor reset, and are meaningful only as deltas taken
// on the same logical core; counters on different cores may be offset or
// reset independently, and nothing here converts counts to wall-clock time.
//
// On architectures without a readable cycle counter, and on any architecture
// under the purego build tag, Read is backed by the Go runtime's monotonic
// clock and counts nanoseconds instead of cycles. Supported and Name report
// which backend a build carries.
package cycles
