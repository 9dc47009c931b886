package usecase

import (
	"context"

	"replacement-metrics-service/internal/replacements/core/domain"
	"replacement-metrics-service/internal/replacements/core/pipeline"

	"golang.org/x/sync/errgroup"
)

// BuildDashboard derives every view from records. The aggregators only read
// records and each writes its own field, so they run side by side.
func BuildDashboard(ctx context.Context, records []domain.ReplacementRecord, opts pipeline.Options) (*domain.Dashboard, error) {
	if opts.Classifier == nil {
		opts.Classifier = pipeline.DefaultClassifier()
	}

	d := &domain.Dashboard{
		Total:     len(records),
		Pending:   pipeline.CountPending(records),
		Completed: pipeline.CountCompleted(records),
	}

	filters := make([][]string, len(pipeline.FilterFields))
	var trend pipeline.Trend

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.IssueCategories = opts.Classifier.Counts(records)
		return nil
	})
	g.Go(func() error {
		d.Engineers = pipeline.TopEngineers(records, opts.EngineerLimit)
		return nil
	})
	g.Go(func() error {
		d.Ratings = pipeline.RatingStats(records)
		return nil
	})
	g.Go(func() error {
		d.States = pipeline.StateStats(records)
		return nil
	})
	g.Go(func() error {
		trend = pipeline.TrendReport(records, opts.Trend)
		return nil
	})
	for i, f := range pipeline.FilterFields {
		g.Go(func() error {
			filters[i] = pipeline.DistinctValues(records, f)
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.UniqueEngineers = len(d.Engineers)
	d.MonthlyTrend = trend.Buckets
	d.TrendFallbacks = trend.Fallbacks
	d.TrendSkipped = trend.Skipped
	d.Filters = make(map[string][]string, len(filters))
	for i, f := range pipeline.FilterFields {
		d.Filters[string(f)] = filters[i]
	}
	return d, nil
}
