package main

import (
	"math"
	"testing"
	"time"
)

func TestOSClockSource(t *testing.T) {
	src, err := osClockSource()
	if err != nil {
		t.Fatalf("monotonic clock unavailable: %v", err)
	}

	first := src.read()
	time.Sleep(time.Millisecond)
	second := src.read()

	if second <= first {
		t.Errorf("clock did not advance: %d then %d", first, second)
	}
}

func TestResolveSources(t *testing.T) {
	sources := resolveSources([]string{"counter", "bogus", "wall"})

	if len(sources) != 2 {
		t.Fatalf("resolved %d sources, want 2", len(sources))
	}

	if sources[0].name != "counter" || sources[1].name != "wall" {
		t.Errorf("unexpected sources: %q, %q", sources[0].name, sources[1].name)
	}
}

func TestMeasureCounter(t *testing.T) {
	res := measure(counterSource(), 100, 100)

	if res.minDelta == math.MaxUint64 {
		t.Error("no delta measured")
	}

	if res.uniqueness <= 0 || res.uniqueness > 1 {
		t.Errorf("uniqueness ratio out of range: %f", res.uniqueness)
	}

	if res.backwards != 0 {
		t.Errorf("counter moved backwards %d times", res.backwards)
	}
}
