package generator

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
	"github.com/google/uuid"
)

// VisionHash fingerprints a detected object. Equal inputs with a non-empty
// seed give equal hashes; an empty seed is replaced by a random uuid so the
// hash never collides with an existing one.
func VisionHash(name string, c models.Coordinates, seed string) string {
	if seed == "" {
		seed = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	sum := sha1.Sum([]byte(name + "-" + c.String() + "-" + seed))
	return hex.EncodeToString(sum[:])[:16]
}
