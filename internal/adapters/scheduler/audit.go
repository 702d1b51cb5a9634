// Package scheduler runs periodic background jobs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"

	"mesabot/internal/ports/input"
)

// auditMissingKeys holds the result of the last audit, one series per locale
// pair side: side="locale" counts keys the audited locale lacks, side="default"
// counts keys only the audited locale defines.
var auditMissingKeys = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "mesabot_i18n_audit_missing_keys",
	Help: "Leaf keys missing per locale at the last translation audit.",
}, []string{"locale", "side"})

// AuditJob compares every locale on disk with the default locale.
type AuditJob struct {
	translations input.TranslationUseCase
	gauge        *prometheus.GaugeVec
	logger       *slog.Logger
}

var _ cron.Job = (*AuditJob)(nil)

func NewAuditJob(translations input.TranslationUseCase, logger *slog.Logger) *AuditJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditJob{translations: translations, gauge: auditMissingKeys, logger: logger}
}

// Run publishes the audit to the gauge and warns about incomplete locales.
func (j *AuditJob) Run() {
	diffs, err := j.translations.Audit()
	if err != nil {
		j.logger.Error("i18n audit failed", slog.Any("error", err))
		return
	}
	j.gauge.Reset()
	for _, d := range diffs {
		j.gauge.WithLabelValues(d.B, "locale").Set(float64(len(d.MissingInB)))
		j.gauge.WithLabelValues(d.B, "default").Set(float64(len(d.MissingInA)))
		if !d.Complete() {
			j.logger.Warn("i18n locale incomplete",
				slog.String("default", d.A),
				slog.String("locale", d.B),
				slog.Int("missing", len(d.MissingInB)),
				slog.Int("extra", len(d.MissingInA)),
			)
		}
	}
	j.logger.Info("i18n audit done", slog.Int("locales", len(diffs)))
}

// RunAudit runs job once, then on schedule until ctx is done.
func RunAudit(ctx context.Context, schedule string, job cron.Job, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	c := cron.New()
	if _, err := c.AddJob(schedule, job); err != nil {
		return fmt.Errorf("scheduler: invalid schedule %q: %w", schedule, err)
	}
	job.Run()
	c.Start()
	logger.Info("i18n audit scheduled", slog.String("schedule", schedule))

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
