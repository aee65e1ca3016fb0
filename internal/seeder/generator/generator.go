// Package generator builds the synthetic dataset: users, their residences,
// scans of each residence, the objects those scans detect and a history of
// changes per object. All randomness flows from one *rand.Rand, so a seed
// reproduces a dataset.
package generator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dmitrijs2005/homeseed/internal/logging"
	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
	"github.com/dmitrijs2005/homeseed/internal/seeder/report"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/repomanager"
)

// DetectionPlan lists what one scan detects: sightings of catalog templates
// and a number of transient objects.
type DetectionPlan struct {
	Catalog   []*models.Object
	Transient int
}

type Generator struct {
	repos    repomanager.Repositories
	params   Params
	rng      *rand.Rand
	factory  *Factory
	resolver *Resolver
	logger   logging.Logger
	stats    *report.Report
}

func New(repos repomanager.Repositories, params Params, rng *rand.Rand, factory *Factory,
	logger logging.Logger, stats *report.Report) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		repos:    repos,
		params:   params,
		rng:      rng,
		factory:  factory,
		resolver: NewResolver(repos, factory, rng, logger, stats),
		logger:   logger,
		stats:    stats,
	}, nil
}

// Run generates the whole dataset. It stops at the first unrecoverable
// error or when ctx is cancelled.
func (g *Generator) Run(ctx context.Context) error {
	for i := 0; i < g.params.UserCount; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.seedUser(ctx, i); err != nil {
			return fmt.Errorf("user %d: %w", i, err)
		}
	}
	return nil
}

func (g *Generator) daysAfterStart(maxDays int) time.Time {
	return g.params.BaseStart.Add(time.Duration(between(g.rng, 0, maxDays)) * day)
}

func (g *Generator) seedUser(ctx context.Context, index int) error {
	candidate, err := g.factory.NewUser(index, g.daysAfterStart(100))
	if err != nil {
		return err
	}

	user, err := g.resolver.CreateUser(ctx, candidate, index)
	if err != nil {
		return err
	}
	g.stats.Users++
	ctx = logging.ContextWith(ctx, "user_id", user.ID)

	n := between(g.rng, g.params.MinResidences, g.params.MaxResidences)
	g.logger.Debug(ctx, "user seeded", "email", user.Email, "residences", n)

	for r := 0; r < n; r++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.seedResidence(ctx, user, r); err != nil {
			return fmt.Errorf("residence %d: %w", r, err)
		}
	}
	return nil
}

func (g *Generator) seedResidence(ctx context.Context, user *models.User, index int) error {
	residence, err := g.repos.Residences.Create(ctx, g.factory.NewResidence(user.ID, index, g.daysAfterStart(100)))
	if err != nil {
		return fmt.Errorf("create residence: %w", err)
	}
	g.stats.Residences++
	ctx = logging.ContextWith(ctx, "residence_id", residence.ID)

	catalog := make([]*models.Object, between(g.rng, g.params.MinCatalog, g.params.MaxCatalog))
	for p := range catalog {
		catalog[p] = g.factory.NewCatalogObject(residence.ID, p+1)
	}
	rc := NewResidenceContext(user, residence, catalog)

	start := g.daysAfterStart(60)
	schedule := ScanSchedule(g.rng, start, between(g.rng, g.params.MinScans, g.params.MaxScans))

	var prev time.Time
	for i, ts := range schedule {
		if err := ctx.Err(); err != nil {
			return err
		}
		// A shifted retry may have overtaken the next scheduled slot.
		if !prev.IsZero() && !ts.After(prev) {
			ts = prev.Add(ShiftOffset(g.rng))
		}
		scan, err := g.SeedScan(ctx, rc, i, ts)
		if err != nil {
			return fmt.Errorf("scan %d: %w", i, err)
		}
		prev = scan.Timestamp
	}

	if err := g.FinalizeCatalog(ctx, rc); err != nil {
		return err
	}

	g.logger.Debug(ctx, "residence seeded", "scans", len(schedule), "catalog", len(catalog))
	return nil
}

// SeedScan writes scan index of rc at ts, resolves its detections, sets the
// detected count and generates history for every resolved object.
func (g *Generator) SeedScan(ctx context.Context, rc *ResidenceContext, index int, ts time.Time) (*models.Scan, error) {
	scan, err := g.resolver.CreateScan(ctx, g.factory.NewScan(rc.Residence.ID, rc.User.ID, ts))
	if err != nil {
		return nil, err
	}
	g.stats.Scans++

	n := between(g.rng, 0, g.params.MaxObjectsPerScan)
	fromCatalog, transient := SplitDetections(g.rng, n, len(rc.Catalog))
	plan := DetectionPlan{
		Catalog:   Sample(g.rng, rc.Catalog, fromCatalog),
		Transient: transient,
	}

	resolved, err := g.Detect(ctx, rc, scan, index, plan)
	if err != nil {
		return nil, err
	}

	if err := g.repos.Scans.SetObjectsDetectedCount(ctx, scan.ID, len(resolved)); err != nil {
		return nil, fmt.Errorf("set detected count: %w", err)
	}
	scan.ObjectsDetectedCount = len(resolved)

	for _, obj := range resolved {
		if err := g.generateHistory(ctx, rc, obj); err != nil {
			return nil, err
		}
	}
	return scan, nil
}

// Detect builds the candidates of plan for scan, resolves each one and
// returns the live state of the objects that were inserted or updated.
func (g *Generator) Detect(ctx context.Context, rc *ResidenceContext, scan *models.Scan, index int, plan DetectionPlan) ([]*models.Object, error) {
	candidates := make([]*models.Object, 0, len(plan.Catalog)+plan.Transient)
	for _, t := range plan.Catalog {
		candidates = append(candidates, g.factory.NewSighting(t, scan.ID, scan.Timestamp))
	}
	for t := 0; t < plan.Transient; t++ {
		candidates = append(candidates, g.factory.NewTransientObject(rc.Residence.ID, scan.ID, index, scan.Timestamp))
	}

	resolved := make([]*models.Object, 0, len(candidates))
	for _, c := range candidates {
		outcome, err := g.resolver.ResolveObject(ctx, c)
		if err != nil {
			return nil, err
		}
		if !outcome.Resolved() {
			continue
		}
		rc.Track(outcome.Object)
		resolved = append(resolved, outcome.Object)
	}
	return resolved, nil
}

func (g *Generator) generateHistory(ctx context.Context, rc *ResidenceContext, obj *models.Object) error {
	k := between(g.rng, 0, g.params.MaxHistoryPerObject)
	for h := 0; h < k; h++ {
		ts := obj.LastSeen.Add(HistoryOffset(g.rng, h))
		if _, err := g.ApplyAction(ctx, rc, obj, PickAction(g.rng), ts); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAction applies one history event of the given kind to obj at ts:
// the object is updated in the store, the entry is appended and obj is
// refreshed in place so later events see the new state.
func (g *Generator) ApplyAction(ctx context.Context, rc *ResidenceContext, obj *models.Object, kind models.ActionType, ts time.Time) (*models.HistoryEntry, error) {
	entry := g.factory.NewHistoryEntry(obj.ID, rc.User.ID, kind, ts)
	next := obj.Clone()

	switch kind {
	case models.ActionMoved:
		oldCoords := obj.Coordinates
		newCoords := Jitter(g.rng, oldCoords)
		entry.OldCoordinates = &oldCoords
		entry.NewCoordinates = &newCoords
		entry.Notes = fmt.Sprintf(noteMoved, rc.Residence.Name)
		next.Coordinates = newCoords
	case models.ActionRenamed:
		oldName, newName := obj.Name, obj.Name+renameSuffix
		entry.OldName = &oldName
		entry.NewName = &newName
		next.Name = newName
	case models.ActionColorChanged:
		oldColor, newColor := obj.Color, g.factory.OtherColor(obj.Color)
		entry.OldColor = &oldColor
		entry.NewColor = &newColor
		next.Color = newColor
	case models.ActionRemoved:
		next.Status = models.StatusRemoved
	}
	next.LastSeen = ts

	if err := g.repos.Objects.Update(ctx, next); err != nil {
		return nil, fmt.Errorf("apply %s to object %s: %w", kind, obj.ID, err)
	}
	created, err := g.repos.History.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("append %s history: %w", kind, err)
	}

	*obj = *next
	g.stats.History++
	return created, nil
}

// FinalizeCatalog writes every catalog template of rc that no scan sighted,
// dated at the residence creation time.
func (g *Generator) FinalizeCatalog(ctx context.Context, rc *ResidenceContext) error {
	for _, t := range rc.Unseen() {
		outcome, err := g.resolver.InsertCatalogObject(ctx, g.factory.Materialize(t, rc.Residence.CreatedAt))
		if err != nil {
			return err
		}
		if outcome.Resolved() {
			rc.Track(outcome.Object)
		}
	}
	return nil
}
