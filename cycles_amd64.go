//go:build amd64 && !purego

package cycles

const backendName = "rdtsc"

// rdtsc reads the CPU timestamp counter, returning the low and high 32-bit
// halves the instruction leaves in EAX and EDX.
// Implemented in cycles_amd64.s
//
//go:noescape
func rdtsc() (lo, hi uint32)

func readCount() uint64 {
	lo, hi := rdtsc()
	return joinHalves(hi, lo)
}

// The timestamp counter is part of the x86-64 baseline.
func supported() bool {
	return true
}
