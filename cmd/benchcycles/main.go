package main

import (
	"flag"
	"fmt"
	"math"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/cwbudde/cycles"
)

// timeSource is one way of reading elapsed time for comparison.
type timeSource struct {
	name string
	unit string
	read func() uint64
}

type sourceResult struct {
	name       string
	unit       string
	minDelta   uint64
	uniqueness float64
	backwards  int
}

func main() {
	var (
		sourceList = flag.String("sources", "counter,clock,wall", "comma-separated time sources")
		pairs      = flag.Int("pairs", 10000, "paired reads per overhead estimate")
		samples    = flag.Int("samples", 1000, "reads per uniqueness burst")
		workers    = flag.Int("workers", 0, "concurrent counter readers (0 disables the check)")
		reads      = flag.Int("reads", 100000, "reads per concurrent worker")
	)
	flag.Parse()

	if *pairs <= 0 || *samples <= 0 {
		fmt.Println("pairs and samples must be positive")
		return
	}

	sources := resolveSources(parseSources(*sourceList))
	if len(sources) == 0 {
		fmt.Println("no sources specified")
		return
	}

	fmt.Printf("platform=%s/%s backend=%s hardware=%v invariant=%v\n",
		runtime.GOOS, runtime.GOARCH, cycles.Name(), cycles.Supported(), cycles.Invariant())
	fmt.Printf("features=%s\n", featureSummary())
	fmt.Printf("pairs=%d samples=%d\n\n", *pairs, *samples)

	results := make([]sourceResult, 0, len(sources))
	for _, src := range sources {
		results = append(results, measure(src, *pairs, *samples))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].minDelta < results[j].minDelta
	})

	fmt.Printf("%14s  %8s  %12s  %10s  %10s\n", "source", "unit", "min delta", "unique", "backwards")

	for _, res := range results {
		fmt.Printf("%14s  %8s  %12d  %9.1f%%  %10d\n",
			res.name, res.unit, res.minDelta, res.uniqueness*100, res.backwards)
	}

	if *workers > 0 {
		checkConcurrent(*workers, *reads)
	}
}

// measure estimates read overhead, value resolution, and monotonicity for
// one time source.
func measure(src timeSource, pairs, samples int) sourceResult {
	res := sourceResult{name: src.name, unit: src.unit, minDelta: math.MaxUint64}

	// Warm the read path so the first measured pair pays no one-time costs
	src.read()
	src.read()

	// The smallest back-to-back delta approximates read cost plus counter
	// granularity. Backwards steps wrap to huge deltas and never win.
	for range pairs {
		before := src.read()

		delta := src.read() - before
		if delta < res.minDelta {
			res.minDelta = delta
		}
	}

	values := make([]uint64, samples)
	for i := range values {
		values[i] = src.read()
	}

	unique := make(map[uint64]bool, samples)
	prev := values[0]

	for _, v := range values {
		unique[v] = true

		if v < prev {
			res.backwards++
		}

		prev = v
	}

	res.uniqueness = float64(len(unique)) / float64(samples)

	return res
}

// checkConcurrent exercises the counter from many goroutines at once and
// reports per-reader monotonicity violations.
func checkConcurrent(workers, reads int) {
	fmt.Printf("\nconcurrent check: %d workers x %d reads\n", workers, reads)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		backwards int
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			violations := 0

			prev := cycles.Read()
			for range reads {
				cur := cycles.Read()
				if cur < prev {
					violations++
				}

				prev = cur
			}

			mu.Lock()
			backwards += violations
			mu.Unlock()
		}()
	}

	wg.Wait()

	if backwards == 0 {
		fmt.Println("all readers monotonic")
	} else {
		fmt.Printf("%d backwards steps observed\n", backwards)
	}
}

func counterSource() timeSource {
	unit := "ns"
	if cycles.Supported() {
		unit = "cycles"
	}

	return timeSource{
		name: "counter",
		unit: unit,
		read: func() uint64 { return uint64(cycles.Read()) },
	}
}

// wallClockSource reads the wall clock, which NTP may step backwards; the
// backwards column makes that visible next to the monotonic sources.
func wallClockSource() timeSource {
	return timeSource{
		name: "wall",
		unit: "ns",
		read: func() uint64 { return uint64(time.Now().UnixNano()) },
	}
}

func resolveSources(names []string) []timeSource {
	out := make([]timeSource, 0, len(names))

	for _, name := range names {
		switch name {
		case "counter":
			out = append(out, counterSource())
		case "clock":
			src, err := osClockSource()
			if err != nil {
				fmt.Printf("error reading monotonic clock: %v\n", err)
				continue
			}

			out = append(out, src)
		case "wall":
			out = append(out, wallClockSource())
		}
	}

	return out
}

func parseSources(list string) []string {
	parts := strings.Split(list, ",")

	out := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		out = append(out, part)
	}

	return out
}

// featureSummary reports the detected CPU features for the run header.
func featureSummary() string {
	features := make([]string, 0, 4)

	if cpu.X86.HasSSE2 {
		features = append(features, "sse2")
	}

	if cpu.X86.HasAVX2 {
		features = append(features, "avx2")
	}

	if cpu.X86.HasAVX512 {
		features = append(features, "avx512")
	}

	if cpu.ARM64.HasASIMD {
		features = append(features, "neon")
	}

	if len(features) == 0 {
		return "none"
	}

	return strings.Join(features, ",")
}
