package ports

import (
	"context"

	"replacement-metrics-service/internal/imports/core/domain"
)

type ReplacementWriterPort interface {
	// InsertReplacement:
	//   created = true,  err = nil  -> new row
	//   created = false, err = nil  -> duplicate dedupe key
	//   created = false, err != nil -> DB error
	InsertReplacement(ctx context.Context, r *domain.ImportedReplacement) (created bool, err error)
}

// DashboardInvalidator drops derived views after the store changes.
type DashboardInvalidator interface {
	InvalidateDashboard(ctx context.Context) error
}
