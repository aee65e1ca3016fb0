package generator

import (
	"math/rand/v2"

	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
)

// Jitter offsets base by sensor-like noise: ±0.8 m on x and y, -0.1..0.6 m on
// z, rounded to millimetres.
func Jitter(rng *rand.Rand, base models.Coordinates) models.Coordinates {
	return models.Coordinates{
		X: round3(base.X + uniform(rng, -0.8, 0.8)),
		Y: round3(base.Y + uniform(rng, -0.8, 0.8)),
		Z: round3(base.Z + uniform(rng, -0.1, 0.6)),
	}
}
