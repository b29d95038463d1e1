//go:build 386 && !purego

package cycles

const backendName = "rdtsc"

// rdtsc reads the CPU timestamp counter, returning the low and high 32-bit
// halves the instruction leaves in EAX and EDX. A 32-bit target cannot form
// the combined value in a register.
// Implemented in cycles_386.s
//
//go:noescape
func rdtsc() (lo, hi uint32)

func readCount() uint64 {
	lo, hi := rdtsc()
	return joinHalves(hi, lo)
}
