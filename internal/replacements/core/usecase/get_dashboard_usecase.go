package usecase

import (
	"context"
	"errors"
	"strings"

	"replacement-metrics-service/internal/replacements/core/domain"
	"replacement-metrics-service/internal/replacements/core/pipeline"
	"replacement-metrics-service/internal/replacements/core/ports"

	"go.uber.org/zap"
)

var ErrEmptyCSV = errors.New("csv body is empty")

type GetDashboardUseCase struct {
	reader     ports.ReplacementReaderPort
	cache      ports.DashboardCachePort // nil disables caching
	normalizer pipeline.Normalizer
	opts       pipeline.Options
	csvOpts    pipeline.CSVOptions
	log        *zap.Logger
}

type DashboardConfig struct {
	Normalizer pipeline.Normalizer
	Options    pipeline.Options
	CSV        pipeline.CSVOptions
}

func NewGetDashboardUseCase(
	reader ports.ReplacementReaderPort,
	cache ports.DashboardCachePort,
	cfg DashboardConfig,
	log *zap.Logger,
) *GetDashboardUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &GetDashboardUseCase{
		reader:     reader,
		cache:      cache,
		normalizer: cfg.Normalizer,
		opts:       cfg.Options,
		csvOpts:    cfg.CSV,
		log:        log,
	}
}

// Execute builds the dashboard over stored replacements, serving it from
// the cache when possible. Cache errors never fail the call.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*domain.Dashboard, error) {
	if uc.cache != nil {
		d, err := uc.cache.GetDashboard(ctx)
		switch {
		case err == nil:
			return d, nil
		case !errors.Is(err, ports.ErrCacheMiss):
			uc.log.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	rows, err := uc.reader.ListReplacements(ctx)
	if err != nil {
		return nil, err
	}

	d, err := uc.build(ctx, uc.normalizer.Normalize(rows))
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetDashboard(ctx, d); err != nil {
			uc.log.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return d, nil
}

// FromCSV builds a dashboard straight from an export, without storage.
func (uc *GetDashboardUseCase) FromCSV(ctx context.Context, text string) (*domain.Dashboard, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyCSV
	}

	res := pipeline.ParseCSVWith(text, uc.csvOpts)
	if res.Dropped > 0 {
		uc.log.Info("csv rows dropped", zap.Int("dropped", res.Dropped), zap.Int("kept", len(res.Records)))
	}
	return uc.build(ctx, res.Records)
}

func (uc *GetDashboardUseCase) build(ctx context.Context, records []domain.ReplacementRecord) (*domain.Dashboard, error) {
	d, err := BuildDashboard(ctx, records, uc.opts)
	if err != nil {
		return nil, err
	}
	if d.TrendFallbacks > 0 {
		uc.log.Warn("dates without a year counted under the fallback year",
			zap.Int("count", d.TrendFallbacks),
			zap.Int("fallback_year", uc.opts.Trend.FallbackYear),
		)
	}
	if d.TrendSkipped > 0 {
		uc.log.Warn("dates without a readable month left out of the trend",
			zap.Int("count", d.TrendSkipped),
		)
	}
	return d, nil
}
