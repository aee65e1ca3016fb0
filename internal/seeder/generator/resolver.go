package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/dmitrijs2005/homeseed/internal/common"
	"github.com/dmitrijs2005/homeseed/internal/logging"
	"github.com/dmitrijs2005/homeseed/internal/seeder/models"
	"github.com/dmitrijs2005/homeseed/internal/seeder/report"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/repomanager"
)

// Resolver writes documents and turns unique-key conflicts into a shifted
// retry (users, scans) or an update of the stored document (objects). A
// conflict that survives the single retry is returned as an error.
type Resolver struct {
	repos   repomanager.Repositories
	factory *Factory
	rng     *rand.Rand
	logger  logging.Logger
	stats   *report.Report
}

func NewResolver(repos repomanager.Repositories, factory *Factory, rng *rand.Rand, logger logging.Logger, stats *report.Report) *Resolver {
	return &Resolver{
		repos:   repos,
		factory: factory,
		rng:     rng,
		logger:  logger,
		stats:   stats,
	}
}

func (r *Resolver) CreateUser(ctx context.Context, u *models.User, index int) (*models.User, error) {
	created, err := r.repos.Users.Create(ctx, u)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, common.ErrAlreadyExists) {
		return nil, fmt.Errorf("create user: %w", err)
	}

	r.stats.EmailConflicts++
	taken := u.Email
	u.Email = r.factory.AlternateEmail(u, index)
	r.logger.Debug(ctx, "email taken, retrying", "email", taken, "retry_email", u.Email)

	created, err = r.repos.Users.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("create user after email retry: %w", err)
	}
	return created, nil
}

func (r *Resolver) CreateScan(ctx context.Context, s *models.Scan) (*models.Scan, error) {
	created, err := r.repos.Scans.Create(ctx, s)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, common.ErrAlreadyExists) {
		return nil, fmt.Errorf("create scan: %w", err)
	}

	r.stats.TimestampConflicts++
	taken := s.Timestamp
	s.Timestamp = s.Timestamp.Add(ShiftOffset(r.rng))
	r.logger.Debug(ctx, "scan timestamp taken, shifting",
		"residence_id", s.ResidenceID, "timestamp", taken, "retry_timestamp", s.Timestamp)

	created, err = r.repos.Scans.Create(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("create scan after timestamp shift: %w", err)
	}
	return created, nil
}

// ResolveObject inserts candidate or, when its vision hash is already stored
// for the residence, folds the sighting into the stored object.
func (r *Resolver) ResolveObject(ctx context.Context, candidate *models.Object) (Outcome, error) {
	created, err := r.repos.Objects.Create(ctx, candidate)
	if err == nil {
		r.stats.ObjectsInserted++
		return Outcome{Kind: OutcomeInserted, Object: created}, nil
	}
	if !errors.Is(err, common.ErrAlreadyExists) {
		return Outcome{}, fmt.Errorf("create object: %w", err)
	}

	r.stats.VisionHashConflicts++
	existing, err := r.repos.Objects.FindByVisionHash(ctx, candidate.ResidenceID, candidate.VisionHash)
	if errors.Is(err, common.ErrorNotFound) {
		return r.drop(ctx, candidate, "conflicting object not found"), nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("find object %s: %w", candidate.VisionHash, err)
	}

	applySighting(existing, candidate)

	err = r.repos.Objects.Update(ctx, existing)
	if errors.Is(err, common.ErrorNotFound) {
		return r.drop(ctx, candidate, "conflicting object vanished before update"), nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("update object %s: %w", existing.ID, err)
	}

	r.stats.ObjectsUpdated++
	return Outcome{Kind: OutcomeUpdated, Object: existing}, nil
}

// InsertCatalogObject writes a never-sighted catalog template. A conflict
// means the object is already stored and is reported as dropped.
func (r *Resolver) InsertCatalogObject(ctx context.Context, obj *models.Object) (Outcome, error) {
	created, err := r.repos.Objects.Create(ctx, obj)
	if err == nil {
		r.stats.CatalogMaterialized++
		return Outcome{Kind: OutcomeInserted, Object: created}, nil
	}
	if errors.Is(err, common.ErrAlreadyExists) {
		r.logger.Debug(ctx, "catalog object already present", "vision_hash", obj.VisionHash)
		return Outcome{Kind: OutcomeDropped, Reason: "already present"}, nil
	}
	return Outcome{}, fmt.Errorf("create catalog object: %w", err)
}

func (r *Resolver) drop(ctx context.Context, candidate *models.Object, reason string) Outcome {
	r.stats.ObjectsDropped++
	r.logger.Warn(ctx, "detection dropped",
		"residence_id", candidate.ResidenceID, "vision_hash", candidate.VisionHash, "reason", reason)
	return Outcome{Kind: OutcomeDropped, Reason: reason}
}

// applySighting copies the sighting fields of candidate onto stored. Name,
// color and status keep their stored values; last_seen never moves back.
func applySighting(stored, candidate *models.Object) {
	stored.Coordinates = candidate.Coordinates
	stored.ScanID = candidate.ScanID
	stored.Confidence = candidate.Confidence
	if candidate.LastSeen.After(stored.LastSeen) {
		stored.LastSeen = candidate.LastSeen
	}
}
