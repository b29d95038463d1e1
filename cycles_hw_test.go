//go:build (amd64 || arm64) && !purego

package cycles

import "testing"

// These platforms always carry a hardware counter backend.
func TestHardwareBackend(t *testing.T) {
	if !Supported() {
		t.Fatal("hardware counter expected on this platform")
	}

	if name := Name(); name != "rdtsc" && name != "cntvct_el0" {
		t.Fatalf("unexpected backend %q", name)
	}
}
