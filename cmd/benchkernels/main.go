// Command benchkernels times the transform kernels across sizes and
// prints a ns/op table. It complements the testing benchmarks with a
// standalone harness that is easy to run on bare metal.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	fft "github.com/cwbudde/mersenne-fft"
	"github.com/cwbudde/mersenne-fft/internal/cpu"
)

const (
	modeForward   = "forward"
	modeInverse   = "inverse"
	modeRoundtrip = "roundtrip"
)

type benchResult struct {
	size    int
	mode    string
	nsPerOp float64
}

func main() {
	var (
		sizeList = flag.String("sizes", "64,256,1024,4096", "comma-separated sizes")
		iters    = flag.Int("iters", 2000, "benchmark iterations")
		warmup   = flag.Int("warmup", 100, "warmup iterations")
		mode     = flag.String("mode", "all", "benchmark mode: forward, inverse, roundtrip, all")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	fmt.Printf("cpu: %s\n", cpu.DetectFeatures())
	fmt.Printf("iters=%d warmup=%d seed=%d\n", *iters, *warmup, *seed)
	fmt.Printf("%8s  %10s  %12s\n", "size", "mode", "ns/op")

	rnd := rand.New(rand.NewSource(*seed))
	for _, n := range sizes {
		for _, runMode := range resolveModes(*mode) {
			res, err := benchmarkSize(rnd, n, *iters, *warmup, runMode)
			if err != nil {
				fmt.Printf("%8d  %10s  error: %v\n", n, runMode, err)
				continue
			}
			fmt.Printf("%8d  %10s  %12.1f\n", res.size, res.mode, res.nsPerOp)
		}
	}
}

func benchmarkSize(rnd *rand.Rand, n, iters, warmup int, mode string) (benchResult, error) {
	plan, err := fft.NewPlan(n)
	if err != nil {
		return benchResult{}, err
	}

	buf := make([]fft.Complex, n)
	for i := range buf {
		buf[i] = fft.Complex{Re: rnd.Int63n(fft.P + 1), Im: rnd.Int63n(fft.P + 1)}
	}

	run := func(b []fft.Complex) {
		switch mode {
		case modeForward:
			plan.Forward(b)
			fft.Normalize(b)
		case modeInverse:
			plan.Inverse(b)
		default:
			plan.Forward(b)
			plan.Inverse(b)
		}
	}

	for i := 0; i < warmup; i++ {
		run(buf)
	}

	start := cpu.ReadCycleCounter()
	for i := 0; i < iters; i++ {
		run(buf)
	}
	elapsed := cpu.CyclesSince(start)

	return benchResult{
		size:    n,
		mode:    mode,
		nsPerOp: float64(elapsed) / float64(iters),
	}, nil
}

func resolveModes(mode string) []string {
	if mode == "all" {
		return []string{modeForward, modeInverse, modeRoundtrip}
	}
	return []string{mode}
}

func parseSizes(list string) []int {
	var sizes []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			fmt.Printf("skipping invalid size %q\n", part)
			continue
		}
		sizes = append(sizes, n)
	}
	return sizes
}
