package jobs

import (
	"context"
	"log/slog"

	"orderhub/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultReconciliationSchedule runs at second 0 of every fifth minute.
const DefaultReconciliationSchedule = "0 */5 * * * *"

// DiscrepancyFinder is the query the job runs.
type DiscrepancyFinder interface {
	Handle(ctx context.Context, query queries.GetCreditDiscrepanciesQuery) ([]queries.CreditDiscrepancy, error)
}

// DiscrepancyRecorder exposes the size of the last run.
type DiscrepancyRecorder interface {
	SetCreditDiscrepancies(n int)
}

// CreditReconciliationJob periodically compares each partner's creditUsed with
// the orders that hold credit and logs every partner where they differ.
// It only reads; fixing a drift is left to an operator.
type CreditReconciliationJob struct {
	finder   DiscrepancyFinder
	recorder DiscrepancyRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCreditReconciliationJob creates the job. schedule is a six-field cron
// expression (with seconds); an empty one means DefaultReconciliationSchedule.
// recorder may be nil.
func NewCreditReconciliationJob(
	finder DiscrepancyFinder,
	recorder DiscrepancyRecorder,
	schedule string,
	logger *slog.Logger,
) *CreditReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconciliationSchedule
	}

	return &CreditReconciliationJob{
		finder:   finder,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "credit_reconciliation_job"),
	}
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *CreditReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Credit reconciliation job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single reconciliation pass and returns what it found.
func (j *CreditReconciliationJob) RunOnce(ctx context.Context) ([]queries.CreditDiscrepancy, error) {
	found, err := j.finder.Handle(ctx, queries.NewGetCreditDiscrepanciesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Credit reconciliation failed", "error", err)
		return nil, err
	}

	if j.recorder != nil {
		j.recorder.SetCreditDiscrepancies(len(found))
	}

	for _, d := range found {
		j.logger.WarnContext(ctx, "Partner credit does not match its orders",
			"partner_id", d.PartnerID.String(),
			"credit_used", d.CreditUsed.String(),
			"expected", d.Expected.String(),
			"difference", d.Difference.String(),
		)
	}

	return found, nil
}

// Stop stops scheduling and waits for a running pass to finish.
func (j *CreditReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Credit reconciliation job stopped")
}
