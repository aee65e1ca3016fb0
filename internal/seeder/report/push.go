package report

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const pushJob = "homeseed"

// PushMetrics sends the run totals to a Prometheus Pushgateway, grouped by
// run id.
func PushMetrics(ctx context.Context, url string, r *Report) error {
	written := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "homeseed_documents_written",
		Help: "Documents written by the last seeding run, per collection.",
	}, []string{"collection"})
	conflicts := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "homeseed_conflicts_resolved",
		Help: "Unique-key conflicts resolved during the run, per kind.",
	}, []string{"kind"})
	dropped := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "homeseed_objects_dropped",
		Help: "Detections dropped because the conflicting object could not be found.",
	})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "homeseed_run_duration_seconds",
		Help: "Wall time of the seeding run.",
	})

	written.WithLabelValues("users").Set(float64(r.Users))
	written.WithLabelValues("residences").Set(float64(r.Residences))
	written.WithLabelValues("scans").Set(float64(r.Scans))
	written.WithLabelValues("objects").Set(float64(r.Objects()))
	written.WithLabelValues("history").Set(float64(r.History))

	conflicts.WithLabelValues("email").Set(float64(r.EmailConflicts))
	conflicts.WithLabelValues("timestamp").Set(float64(r.TimestampConflicts))
	conflicts.WithLabelValues("vision_hash").Set(float64(r.VisionHashConflicts))

	dropped.Set(float64(r.ObjectsDropped))
	duration.Set(r.Duration().Seconds())

	reg := prometheus.NewRegistry()
	reg.MustRegister(written, conflicts, dropped, duration)

	err := push.New(url, pushJob).
		Gatherer(reg).
		Grouping("run_id", r.RunID).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
