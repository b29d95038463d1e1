package cycles

// Count is a cycle counter snapshot: the number of counter ticks elapsed
// since an arbitrary, platform-defined reference point. Arithmetic on Count
// is modular, so deltas remain correct across the 64-bit wraparound.
//
// On hardware-backed builds a tick is a processor cycle (or, on arm64, a
// tick of the fixed-frequency architected counter); on portable builds it
// is a nanosecond of the runtime monotonic clock.
type Count uint64

// Read returns the current value of the processor's cycle counter.
//
// The read is a bare instruction with no serialization or fencing around
// it, so it may be reordered with surrounding instructions by the
// processor. Successive reads on the same logical core are non-decreasing
// (a platform property, not enforced here); reads on different cores are
// not comparable.
func Read() Count {
	return Count(readCount())
}

// Since returns the number of counter ticks elapsed since start.
func Since(start Count) Count {
	return Read() - start
}

// Supported reports whether Read is backed by a hardware cycle counter.
// When it returns false Read counts nanoseconds of the runtime monotonic
// clock instead of cycles.
func Supported() bool {
	return supported()
}

// Invariant reports whether the counter ticks at a constant rate regardless
// of frequency scaling and power state transitions. On x86 this is the
// invariant-TSC capability; the arm64 architected counter always qualifies.
// Always false on portable backends.
func Invariant() bool {
	return invariant()
}

// Name identifies the counter backend compiled into this build: "rdtsc",
// "cntvct_el0", "nanotime", or "monotonic".
func Name() string {
	return backendName
}

// joinHalves concatenates the two 32-bit halves of a counter value that the
// hardware delivers split across two registers, with the high half in the
// most significant bits.
func joinHalves(hi, lo uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}
