package usecase

import (
	"context"
	"errors"
	"strings"

	"replacement-metrics-service/internal/replacements/core/domain"
	"replacement-metrics-service/internal/replacements/core/pipeline"
	"replacement-metrics-service/internal/replacements/core/ports"
)

var (
	ErrInvalidSerial = errors.New("serial number is required")
	ErrNotFound      = errors.New("replacement not found")
	ErrNoRecords     = errors.New("no records found")
)

type QueryReplacementsUseCase struct {
	reader     ports.ReplacementReaderPort
	normalizer pipeline.Normalizer
}

func NewQueryReplacementsUseCase(reader ports.ReplacementReaderPort, normalizer pipeline.Normalizer) *QueryReplacementsUseCase {
	return &QueryReplacementsUseCase{reader: reader, normalizer: normalizer}
}

// List returns every stored replacement in canonical form.
func (uc *QueryReplacementsUseCase) List(ctx context.Context) ([]domain.ReplacementRecord, error) {
	rows, err := uc.reader.ListReplacements(ctx)
	if err != nil {
		return nil, err
	}
	return uc.normalizer.Normalize(rows), nil
}

func (uc *QueryReplacementsUseCase) BySerialNumber(ctx context.Context, serialNumber string) (*domain.ReplacementRecord, error) {
	serialNumber = strings.TrimSpace(serialNumber)
	if serialNumber == "" {
		return nil, ErrInvalidSerial
	}

	row, err := uc.reader.FindBySerialNumber(ctx, serialNumber)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rec := uc.normalizer.Record(*row, 0)
	return &rec, nil
}

// ByFaultySerial returns ErrNoRecords when the unit has no history.
func (uc *QueryReplacementsUseCase) ByFaultySerial(ctx context.Context, faultySerialNumber string) ([]domain.ReplacementRecord, error) {
	faultySerialNumber = strings.TrimSpace(faultySerialNumber)
	if faultySerialNumber == "" {
		return nil, ErrInvalidSerial
	}

	rows, err := uc.reader.ListByFaultySerial(ctx, faultySerialNumber)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRecords
	}
	return uc.normalizer.Normalize(rows), nil
}
