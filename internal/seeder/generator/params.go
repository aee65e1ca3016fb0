package generator

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/homeseed/internal/common"
)

const day = 24 * time.Hour

// Params controls the size and shape of the generated dataset.
type Params struct {
	UserCount           int
	MinResidences       int
	MaxResidences       int
	MinScans            int
	MaxScans            int
	MaxObjectsPerScan   int
	MaxHistoryPerObject int
	MinCatalog          int
	MaxCatalog          int
	// BaseStart anchors every generated timestamp.
	BaseStart time.Time
}

// DefaultParams returns the stock dataset shape with BaseStart 120 days
// before now.
func DefaultParams(now time.Time) Params {
	return Params{
		UserCount:           100,
		MinResidences:       3,
		MaxResidences:       5,
		MinScans:            10,
		MaxScans:            20,
		MaxObjectsPerScan:   8,
		MaxHistoryPerObject: 4,
		MinCatalog:          3,
		MaxCatalog:          7,
		BaseStart:           now.Add(-120 * day),
	}
}

func (p Params) Validate() error {
	ranges := []struct {
		name     string
		min, max int
	}{
		{"residences", p.MinResidences, p.MaxResidences},
		{"scans", p.MinScans, p.MaxScans},
		{"catalog", p.MinCatalog, p.MaxCatalog},
	}
	for _, r := range ranges {
		if r.min < 0 || r.max < r.min {
			return fmt.Errorf("%w: %s range %d..%d", common.ErrorInvalidParams, r.name, r.min, r.max)
		}
	}
	if p.UserCount < 0 {
		return fmt.Errorf("%w: user count %d", common.ErrorInvalidParams, p.UserCount)
	}
	if p.MaxObjectsPerScan < 0 || p.MaxHistoryPerObject < 0 {
		return fmt.Errorf("%w: per-scan and per-object limits must be non-negative", common.ErrorInvalidParams)
	}
	if p.BaseStart.IsZero() {
		return fmt.Errorf("%w: base start not set", common.ErrorInvalidParams)
	}
	return nil
}
