package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"replacement-metrics-service/internal/imports/core/domain"
	"replacement-metrics-service/internal/imports/core/ports"
	"replacement-metrics-service/internal/replacements/core/pipeline"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptyImport = errors.New("import body is empty")

// Export dates are day first with either separator.
var dateLayouts = []string{"2-1-2006", "2/1/2006"}

type ImportCSVUseCase struct {
	repo        ports.ReplacementWriterPort
	invalidator ports.DashboardInvalidator // nil when no cache is configured
	csvOpts     pipeline.CSVOptions
	loc         *time.Location
	log         *zap.Logger
	newBatchID  func() string
}

func NewImportCSVUseCase(
	repo ports.ReplacementWriterPort,
	invalidator ports.DashboardInvalidator,
	csvOpts pipeline.CSVOptions,
	loc *time.Location,
	log *zap.Logger,
) *ImportCSVUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ImportCSVUseCase{
		repo:        repo,
		invalidator: invalidator,
		csvOpts:     csvOpts,
		loc:         loc,
		log:         log,
		newBatchID:  uuid.NewString,
	}
}

type ImportResult struct {
	BatchID    string
	Created    int
	Duplicates int
	Skipped    int
}

// Execute stores every usable row of an export. Rows without a faulty
// serial or with an unreadable date are skipped. Re-importing the same
// export only yields duplicates.
func (uc *ImportCSVUseCase) Execute(ctx context.Context, text string) (res ImportResult, err error) {
	if strings.TrimSpace(text) == "" {
		return ImportResult{}, ErrEmptyImport
	}

	res = ImportResult{BatchID: uc.newBatchID()}

	rows, dropped := pipeline.ParseImportRows(text, uc.csvOpts)
	res.Skipped = dropped

	batch := make([]*domain.ImportedReplacement, 0, len(rows))
	for _, row := range rows {
		r, ok := uc.toImported(row, res.BatchID)
		if !ok {
			res.Skipped++
			continue
		}
		batch = append(batch, r)
	}

	// rows committed before a failure are still visible, so the cache goes
	// stale whenever anything was created
	defer func() {
		if res.Created > 0 && uc.invalidator != nil {
			if err := uc.invalidator.InvalidateDashboard(ctx); err != nil {
				uc.log.Warn("dashboard cache invalidation failed", zap.Error(err))
			}
		}
	}()

	for _, r := range batch {
		created, err := uc.repo.InsertReplacement(ctx, r)
		if err != nil {
			uc.log.Error("replacement import interrupted",
				zap.String("batch_id", res.BatchID),
				zap.Int("created", res.Created),
				zap.Error(err),
			)
			return res, fmt.Errorf("insert %s: %w", r.DedupeKey, err)
		}
		if created {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	uc.log.Info("replacements imported",
		zap.String("batch_id", res.BatchID),
		zap.Int("created", res.Created),
		zap.Int("duplicates", res.Duplicates),
		zap.Int("skipped", res.Skipped),
	)

	return res, nil
}

func (uc *ImportCSVUseCase) toImported(row pipeline.ImportRow, batchID string) (*domain.ImportedReplacement, bool) {
	rec := row.Record
	if rec.FaultySerialNumber == "" {
		return nil, false
	}

	date, ok := uc.parseDate(rec.Date)
	if !ok {
		return nil, false
	}

	return &domain.ImportedReplacement{
		Date:                    date,
		Rating:                  rec.Rating,
		FaultySerialNumber:      rec.FaultySerialNumber,
		Type:                    row.Type,
		Issue:                   rec.Issue,
		ReplacementSerialNumber: rec.ReplacementSN,
		Customer:                rec.Customer,
		Engineer:                rec.Engineer,
		Status:                  rec.Status,
		State:                   rec.State,
		StockType:               rec.StockType,
		AdditionalComments:      rec.AdditionalComments,
		Remark:                  rec.Remark,
		BatchID:                 batchID,
		DedupeKey:               buildDedupeKey(date, rec.FaultySerialNumber, rec.ReplacementSN),
	}, true
}

func (uc *ImportCSVUseCase) parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, uc.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func buildDedupeKey(date time.Time, faulty, replacement string) string {
	// calendar date + faulty serial + replacement serial
	return fmt.Sprintf("%s|%s|%s", date.Format("2006-01-02"), faulty, replacement)
}
