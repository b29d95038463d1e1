//go:build 386 && !purego

package cycles

import "golang.org/x/sys/cpu"

// supported reports whether the processor has a timestamp counter.
//
// Every SSE2-capable part has one, which covers the default GO386=sse2
// target; softfloat builds on older processors fall through to the CPUID
// leaf-1 TSC flag.
func supported() bool {
	if cpu.X86.HasSSE2 {
		return true
	}

	_, _, _, edx := cpuid(1, 0)

	return edx&tscFlagEDX != 0
}
