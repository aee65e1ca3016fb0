package generator

import (
	"encoding/hex"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
)

// between returns a uniform integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func pick[T any](rng *rand.Rand, xs []T) T {
	return xs[rng.IntN(len(xs))]
}

// Sample returns k distinct elements of xs in random order. xs is not
// modified.
func Sample[T any](rng *rand.Rand, xs []T, k int) []T {
	if k <= 0 {
		return nil
	}
	if k > len(xs) {
		k = len(xs)
	}
	pool := append([]T(nil), xs...)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// SplitDetections divides n detections of a scan between sightings of
// catalog objects and brand new transient objects.
func SplitDetections(rng *rand.Rand, n, catalogSize int) (fromCatalog, transient int) {
	if n <= 0 {
		return 0, 0
	}
	if catalogSize > 0 {
		fromCatalog = between(rng, 0, min(catalogSize, n))
	}
	return fromCatalog, n - fromCatalog
}

var actionWeights = []struct {
	kind   models.ActionType
	weight float64
}{
	{models.ActionMoved, 0.40},
	{models.ActionRenamed, 0.15},
	{models.ActionColorChanged, 0.15},
	{models.ActionRemoved, 0.05},
	{models.ActionStatusUpdate, 0.25},
}

// PickAction draws a history action: moved 40%, status_update 25%,
// renamed 15%, color_changed 15%, removed 5%.
func PickAction(rng *rand.Rand) models.ActionType {
	var total float64
	for _, w := range actionWeights {
		total += w.weight
	}
	x := rng.Float64() * total
	for _, w := range actionWeights {
		if x < w.weight {
			return w.kind
		}
		x -= w.weight
	}
	return actionWeights[len(actionWeights)-1].kind
}

// ScanTimestamp draws the time of scan index within a window opening at
// start: up to 90 days, 23 hours and 59 minutes later, plus index times
// 1..10 minutes.
func ScanTimestamp(rng *rand.Rand, start time.Time, index int) time.Time {
	d := time.Duration(between(rng, 0, 90))*day +
		time.Duration(between(rng, 0, 23))*time.Hour +
		time.Duration(between(rng, 0, 59))*time.Minute
	d += time.Duration(index*between(rng, 1, 10)) * time.Minute
	return start.Add(d)
}

// ScanSchedule draws n scan timestamps and returns them in strictly
// increasing order. Equal draws are pushed one minute past their predecessor.
func ScanSchedule(rng *rand.Rand, start time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = ScanTimestamp(rng, start, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	for i := 1; i < len(out); i++ {
		if !out[i].After(out[i-1]) {
			out[i] = out[i-1].Add(time.Minute)
		}
	}
	return out
}

// HistoryOffset is the gap between an object's last_seen and its h-th
// history entry: 1..60*(h+1) minutes.
func HistoryOffset(rng *rand.Rand, h int) time.Duration {
	return time.Duration(between(rng, 1, 60*(h+1))) * time.Minute
}

// ShiftOffset is the nudge applied to a scan timestamp that collided.
func ShiftOffset(rng *rand.Rand) time.Duration {
	return time.Duration(between(rng, 1, 300)) * time.Second
}

// rngReader exposes rng as an io.Reader so uuid seeds follow the run seed.
type rngReader struct {
	rng *rand.Rand
}

func (r rngReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 4 {
		v := r.rng.Uint32()
		for j := 0; j < 4 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

func randomHex(rng *rand.Rand, n int) string {
	b := make([]byte, (n+1)/2)
	_, _ = rngReader{rng: rng}.Read(b)
	return hex.EncodeToString(b)[:n]
}
