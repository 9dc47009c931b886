package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"replacement-metrics-service/internal/imports/core/domain"
	"replacement-metrics-service/internal/platform/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWriter(t *testing.T) (sqlmock.Sqlmock, *ReplacementWriter, store.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := store.Wrap(db)
	return mock, NewReplacementWriter(wrapped), wrapped
}

func sampleImport() *domain.ImportedReplacement {
	return &domain.ImportedReplacement{
		Date:                    time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC),
		Rating:                  "3Ph",
		FaultySerialNumber:      "F-1",
		Issue:                   "MPPT short",
		ReplacementSerialNumber: "SN-1",
		Status:                  "OPEN",
		BatchID:                 "batch-1",
		DedupeKey:               "2024-09-05|F-1|SN-1",
	}
}

// ------------------------------------------------------------
// INSERT
// ------------------------------------------------------------

func TestInsertReplacement_Created(t *testing.T) {
	mock, repo, _ := setupWriter(t)
	r := sampleImport()

	mock.ExpectExec(`INSERT INTO replacements`).
		WithArgs(
			r.Date, "3Ph", "F-1", nil, "MPPT short", "SN-1",
			nil, nil, "OPEN", nil, nil, nil, nil,
			"batch-1", "2024-09-05|F-1|SN-1",
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := repo.InsertReplacement(context.Background(), r)

	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertReplacement_Duplicate(t *testing.T) {
	mock, repo, _ := setupWriter(t)

	mock.ExpectExec(`ON CONFLICT \(dedupe_key\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := repo.InsertReplacement(context.Background(), sampleImport())

	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertReplacement_DBError(t *testing.T) {
	mock, repo, _ := setupWriter(t)

	mock.ExpectExec(`INSERT INTO replacements`).WillReturnError(errors.New("db failure"))

	created, err := repo.InsertReplacement(context.Background(), sampleImport())

	require.Error(t, err)
	assert.False(t, created)
}

func TestInsertReplacement_RowsAffectedError(t *testing.T) {
	mock, repo, _ := setupWriter(t)

	mock.ExpectExec(`INSERT INTO replacements`).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("rows affected unavailable")))

	created, err := repo.InsertReplacement(context.Background(), sampleImport())

	require.Error(t, err)
	assert.False(t, created)
}

// ------------------------------------------------------------
// SCHEMA
// ------------------------------------------------------------

func TestEnsureSchema(t *testing.T) {
	mock, _, db := setupWriter(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS replacements`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_Error(t *testing.T) {
	mock, _, db := setupWriter(t)

	mock.ExpectExec(`CREATE TABLE`).WillReturnError(errors.New("permission denied"))

	err := EnsureSchema(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ensure schema")
}
