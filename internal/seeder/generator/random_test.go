package generator

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestBetween_Bounds(t *testing.T) {
	rng := newRNG(1)
	for i := 0; i < 1000; i++ {
		v := between(rng, 3, 5)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 5)
	}
	assert.Equal(t, 4, between(rng, 4, 4))
	assert.Equal(t, 4, between(rng, 4, 2))
}

func TestSplitDetections(t *testing.T) {
	rng := newRNG(2)

	tests := []struct {
		name        string
		n, catalog  int
		maxFromCat  int
		wantZeroCat bool
	}{
		{name: "no detections", n: 0, catalog: 5, wantZeroCat: true},
		{name: "empty catalog", n: 6, catalog: 0, wantZeroCat: true},
		{name: "catalog smaller than n", n: 8, catalog: 3, maxFromCat: 3},
		{name: "n smaller than catalog", n: 2, catalog: 7, maxFromCat: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				fromCat, transient := SplitDetections(rng, tt.n, tt.catalog)
				require.Equal(t, tt.n, fromCat+transient)
				require.GreaterOrEqual(t, transient, 0)
				if tt.wantZeroCat {
					require.Zero(t, fromCat)
				} else {
					require.LessOrEqual(t, fromCat, tt.maxFromCat)
				}
			}
		})
	}
}

func TestPickAction_Distribution(t *testing.T) {
	rng := newRNG(3)
	counts := map[models.ActionType]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[PickAction(rng)]++
	}

	want := map[models.ActionType]float64{
		models.ActionMoved:        0.40,
		models.ActionStatusUpdate: 0.25,
		models.ActionRenamed:      0.15,
		models.ActionColorChanged: 0.15,
		models.ActionRemoved:      0.05,
	}
	for kind, p := range want {
		got := float64(counts[kind]) / n
		assert.InDelta(t, p, got, 0.02, "action %s", kind)
	}
}

func TestScanTimestamp_Window(t *testing.T) {
	rng := newRNG(4)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		ts := ScanTimestamp(rng, start, i)
		require.False(t, ts.Before(start))
		maxOffset := 90*day + 23*time.Hour + 59*time.Minute + time.Duration(i*10)*time.Minute
		require.LessOrEqual(t, ts.Sub(start), maxOffset)
	}
}

func TestScanSchedule_StrictlyIncreasing(t *testing.T) {
	rng := newRNG(5)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for run := 0; run < 50; run++ {
		s := ScanSchedule(rng, start, 20)
		require.Len(t, s, 20)
		for i := 1; i < len(s); i++ {
			require.True(t, s[i].After(s[i-1]), "slot %d not after %d", i, i-1)
		}
	}
	assert.Empty(t, ScanSchedule(rng, start, 0))
}

func TestOffsets(t *testing.T) {
	rng := newRNG(6)
	for h := 0; h < 4; h++ {
		for i := 0; i < 100; i++ {
			d := HistoryOffset(rng, h)
			require.GreaterOrEqual(t, d, time.Minute)
			require.LessOrEqual(t, d, time.Duration(60*(h+1))*time.Minute)
		}
	}
	for i := 0; i < 100; i++ {
		d := ShiftOffset(rng)
		require.GreaterOrEqual(t, d, time.Second)
		require.LessOrEqual(t, d, 300*time.Second)
	}
}

func TestSample(t *testing.T) {
	rng := newRNG(7)
	xs := []int{1, 2, 3, 4, 5}

	got := Sample(rng, xs, 3)
	require.Len(t, got, 3)
	seen := map[int]bool{}
	for _, v := range got {
		require.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, xs, "input must not be modified")
	assert.Len(t, Sample(rng, xs, 10), 5)
	assert.Nil(t, Sample(rng, xs, 0))
}

func TestRandomHex(t *testing.T) {
	rng := newRNG(8)
	h := randomHex(rng, 6)
	assert.Regexp(t, `^[0-9a-f]{6}$`, h)
	assert.Equal(t, randomHex(newRNG(9), 6), randomHex(newRNG(9), 6))
}
