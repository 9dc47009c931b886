package ports

import (
	"context"
	"errors"

	"replacement-metrics-service/internal/replacements/core/domain"
)

var (
	ErrNotFound  = errors.New("replacement not found")
	ErrCacheMiss = errors.New("dashboard not cached")
)

type ReplacementReaderPort interface {
	// ListReplacements returns every row, newest first.
	ListReplacements(ctx context.Context) ([]domain.RawRow, error)
	// FindBySerialNumber matches the replacement unit's serial exactly.
	// Returns ErrNotFound when no row matches.
	FindBySerialNumber(ctx context.Context, serialNumber string) (*domain.RawRow, error)
	// ListByFaultySerial returns all rows of one faulty unit, newest first.
	// No rows is an empty slice, not an error.
	ListByFaultySerial(ctx context.Context, faultySerialNumber string) ([]domain.RawRow, error)
}

type DashboardCachePort interface {
	// GetDashboard returns ErrCacheMiss when nothing is cached.
	GetDashboard(ctx context.Context) (*domain.Dashboard, error)
	SetDashboard(ctx context.Context, d *domain.Dashboard) error
	InvalidateDashboard(ctx context.Context) error
}
