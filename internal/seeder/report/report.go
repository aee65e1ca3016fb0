// Package report aggregates the totals of a seeding run and publishes them:
// a summary table on stdout, a JSON file, an optional S3 upload and an
// optional Prometheus Pushgateway push.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/homeseed/internal/filex"
	"github.com/segmentio/ksuid"
)

// newRunID is a seam for tests.
var newRunID = func() string {
	return ksuid.New().String()
}

// Report holds the counters of one run. The generator is single-threaded, so
// fields are incremented directly.
type Report struct {
	RunID      string    `json:"run_id"`
	Seed       uint64    `json:"seed"`
	DryRun     bool      `json:"dry_run"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Users      int `json:"users"`
	Residences int `json:"residences"`
	Scans      int `json:"scans"`

	ObjectsInserted     int `json:"objects_inserted"`
	ObjectsUpdated      int `json:"objects_updated"`
	ObjectsDropped      int `json:"objects_dropped"`
	CatalogMaterialized int `json:"catalog_materialized"`
	History             int `json:"history"`

	EmailConflicts      int `json:"email_conflicts"`
	TimestampConflicts  int `json:"timestamp_conflicts"`
	VisionHashConflicts int `json:"vision_hash_conflicts"`
}

func New(seed uint64, startedAt time.Time) *Report {
	return &Report{
		RunID:     newRunID(),
		Seed:      seed,
		StartedAt: startedAt,
	}
}

func (r *Report) Finish(at time.Time) {
	r.FinishedAt = at
}

func (r *Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Objects is the number of object documents created by the run.
func (r *Report) Objects() int {
	return r.ObjectsInserted + r.CatalogMaterialized
}

// Print writes a human readable summary to w.
func (r *Report) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	rows := []struct {
		label string
		value any
	}{
		{"run", r.RunID},
		{"seed", r.Seed},
		{"duration", r.Duration().Round(time.Millisecond)},
		{"users", r.Users},
		{"residences", r.Residences},
		{"scans", r.Scans},
		{"objects created", r.Objects()},
		{"  from detections", r.ObjectsInserted},
		{"  catalog never sighted", r.CatalogMaterialized},
		{"re-sightings", r.ObjectsUpdated},
		{"dropped detections", r.ObjectsDropped},
		{"history entries", r.History},
		{"email conflicts", r.EmailConflicts},
		{"timestamp conflicts", r.TimestampConflicts},
		{"vision hash conflicts", r.VisionHashConflicts},
	}

	if _, err := fmt.Fprintln(tw, "==== seeding finished ===="); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%v\n", row.label, row.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// FileName is the object name used for the JSON report on disk and in S3.
func (r *Report) FileName() string {
	return r.RunID + ".json"
}

// WriteFile stores the JSON report in dir, creating it if needed, and
// returns the file path.
func (r *Report) WriteFile(dir string) (string, error) {
	data, err := r.JSON()
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	dir, err = filex.EnsureDir(dir)
	if err != nil {
		return "", err
	}
	return filex.WriteFile(dir, r.FileName(), data)
}
