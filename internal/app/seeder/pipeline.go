// Package seeder generates demo time entries. Entries go through the
// mutation service, so each one gets ISO-derived date parts and a create
// audit record exactly like API-created entries.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
	"github.com/heartmarshall/timesheet-backend/internal/service/timeentry"
)

// entryCreator is the slice of the time entry service the seeder needs.
type entryCreator interface {
	Create(ctx context.Context, input timeentry.CreateInput) (*domain.TimeEntry, error)
}

// Result holds the outcome of a seeding run.
type Result struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// Pipeline creates entries for every user on every DayStep-th day of the
// last Months calendar months (days 1..28).
type Pipeline struct {
	log     *slog.Logger
	entries entryCreator
	cfg     Config
	now     func() time.Time
}

// NewPipeline creates a new Pipeline. A nil clock means time.Now.
func NewPipeline(log *slog.Logger, entries entryCreator, cfg Config, now func() time.Time) *Pipeline {
	if now == nil {
		now = time.Now
	}
	return &Pipeline{
		log:     log.With("component", "seeder"),
		entries: entries,
		cfg:     cfg,
		now:     now,
	}
}

// Plan returns the inputs a run would submit, in submission order.
// The same Seed and clock always yield the same plan.
func (p *Pipeline) Plan() []timeentry.CreateInput {
	rng := rand.New(rand.NewPCG(p.cfg.Seed, p.cfg.Seed))
	today := p.now().UTC()

	var plan []timeentry.CreateInput
	for m := 0; m < p.cfg.Months; m++ {
		first := time.Date(today.Year(), today.Month()-time.Month(m), 1, 0, 0, 0, 0, time.UTC)
		for d := 1; d <= 28; d += p.cfg.DayStep {
			date := first.AddDate(0, 0, d-1)
			for _, userID := range p.cfg.UserIDs {
				i := rng.IntN(len(p.cfg.ProjectIDs))
				projectID := p.cfg.ProjectIDs[i]
				clientID := p.cfg.ClientIDs[i%len(p.cfg.ClientIDs)]

				// 2.0 to 6.0 hours, one decimal place.
				tenths := 20 + rng.IntN(41)

				plan = append(plan, timeentry.CreateInput{
					UserID:      userID,
					ClientID:    clientID,
					ProjectID:   projectID,
					Date:        date,
					Hours:       decimal.New(int64(tenths), -1),
					Description: fmt.Sprintf("Worked on project %d for client %d", projectID, clientID),
				})
			}
		}
	}
	return plan
}

// Run submits the plan. Individual failures are counted and logged; Run
// only returns an error when ctx is done.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	plan := p.Plan()

	p.log.InfoContext(ctx, "seeding started",
		slog.Int("planned", len(plan)),
		slog.Bool("dry_run", p.cfg.DryRun),
	)

	var result Result
	if p.cfg.DryRun {
		result.Skipped = len(plan)
		result.Duration = time.Since(start)
		return result, nil
	}

	for _, input := range plan {
		if err := ctx.Err(); err != nil {
			result.Duration = time.Since(start)
			return result, err
		}
		if _, err := p.entries.Create(ctx, input); err != nil {
			result.Errors++
			p.log.WarnContext(ctx, "seed entry failed",
				slog.Int64("user_id", input.UserID),
				slog.String("date", input.Date.Format(domain.DateLayout)),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.Inserted++
	}

	result.Duration = time.Since(start)
	p.log.InfoContext(ctx, "seeding completed",
		slog.Int("inserted", result.Inserted),
		slog.Int("errors", result.Errors),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

// HasErrors reports whether any entry failed.
func (r Result) HasErrors() bool {
	return r.Errors > 0
}
