//go:build (amd64 || 386) && !purego

package cycles

// CPUID leaves and flags used for capability detection.
const (
	leafExtendedMax   = 0x80000000
	leafPowerFeatures = 0x80000007

	tscFlagEDX          = 1 << 4 // leaf 1: TSC present
	invariantTSCFlagEDX = 1 << 8 // leaf 0x80000007: TSC rate is invariant
)

// invariantTSC is resolved once at package load.
var invariantTSC = detectInvariantTSC()

// detectInvariantTSC probes CPUID.80000007H:EDX for the invariant-TSC
// capability, guarding against processors that do not implement the
// extended leaf.
func detectInvariantTSC() bool {
	maxExt, _, _, _ := cpuid(leafExtendedMax, 0)
	if maxExt < leafPowerFeatures {
		return false
	}

	_, _, _, edx := cpuid(leafPowerFeatures, 0)

	return edx&invariantTSCFlagEDX != 0
}

func invariant() bool {
	return invariantTSC
}
