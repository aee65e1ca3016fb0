package generator

import (
	"testing"

	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisionHash(t *testing.T) {
	c := models.Coordinates{X: 1.234, Y: 0.5, Z: 0}

	a := VisionHash("Sofá #1", c, "seed-1")
	assert.Len(t, a, 16)
	assert.Regexp(t, `^[0-9a-f]{16}$`, a)
	assert.Equal(t, a, VisionHash("Sofá #1", c, "seed-1"))
	assert.NotEqual(t, a, VisionHash("Sofá #1", c, "seed-2"))
	assert.NotEqual(t, a, VisionHash("Sofá #2", c, "seed-1"))
	assert.NotEqual(t, a, VisionHash("Sofá #1", models.Coordinates{X: 1.235, Y: 0.5}, "seed-1"))
}

func TestVisionHash_EmptySeedIsFresh(t *testing.T) {
	c := models.Coordinates{}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		h := VisionHash("Mesa (scan1)", c, "")
		require.False(t, seen[h])
		seen[h] = true
	}
}

func TestJitter_Bounds(t *testing.T) {
	rng := newRNG(11)
	base := models.Coordinates{X: 2, Y: 2, Z: 0.5}
	for i := 0; i < 1000; i++ {
		j := Jitter(rng, base)
		require.InDelta(t, base.X, j.X, 0.8+1e-9)
		require.InDelta(t, base.Y, j.Y, 0.8+1e-9)
		require.GreaterOrEqual(t, j.Z, base.Z-0.1-1e-9)
		require.LessOrEqual(t, j.Z, base.Z+0.6+1e-9)
		require.Equal(t, round3(j.X), j.X)
	}
}

func TestJitter_OriginBase(t *testing.T) {
	j := Jitter(newRNG(12), models.Coordinates{})
	assert.LessOrEqual(t, j.X, 0.8)
	assert.GreaterOrEqual(t, j.Z, -0.1)
}
