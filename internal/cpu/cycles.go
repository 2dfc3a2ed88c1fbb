package cpu

import "time"

// ReadCycleCounter returns a monotonic nanosecond timestamp. The name
// is kept loose on purpose: the harness only needs deltas, and
// wall-clock nanoseconds are precise enough for whole-transform
// timings.
func ReadCycleCounter() int64 {
	return time.Now().UnixNano()
}

// CyclesSince returns the nanoseconds elapsed since start.
func CyclesSince(start int64) int64 {
	return ReadCycleCounter() - start
}
