//go:build arm64 && !purego

package cycles

const backendName = "cntvct_el0"

// cntvct reads the virtual counter (CNTVCT_EL0), a single 64-bit register.
// Implemented in cycles_arm64.s
//
//go:noescape
func cntvct() uint64

func readCount() uint64 {
	return cntvct()
}

func supported() bool {
	return true
}

// The architected counter runs at the fixed CNTFRQ_EL0 rate independent of
// core clock scaling.
func invariant() bool {
	return true
}
