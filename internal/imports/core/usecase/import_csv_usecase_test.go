package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"replacement-metrics-service/internal/imports/core/domain"
	"replacement-metrics-service/internal/replacements/core/pipeline"
)

// Fake repo keyed on the dedupe key, like the unique index.
type fakeWriter struct {
	seen    map[string]bool
	inserts []*domain.ImportedReplacement
	Err     error
	FailAt  int // 1-based insert that returns Err; 0 fails every insert
}

func (f *fakeWriter) InsertReplacement(ctx context.Context, r *domain.ImportedReplacement) (bool, error) {
	if f.Err != nil && (f.FailAt == 0 || len(f.inserts)+1 == f.FailAt) {
		return false, f.Err
	}
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	f.inserts = append(f.inserts, r)
	if f.seen[r.DedupeKey] {
		return false, nil
	}
	f.seen[r.DedupeKey] = true
	return true, nil
}

type fakeInvalidator struct {
	calls int
	err   error
}

func (f *fakeInvalidator) InvalidateDashboard(ctx context.Context) error {
	f.calls++
	return f.err
}

const export = "TRACKER\nweekly\nDATE,RATING,SERIAL,TYPE,ISSUE,REPL\n" +
	"05-09-2024,3Ph,F-1,Hybrid,MPPT short,SN-1,Done,Kerala,Acme,A Kumar,New,,\n" +
	"06/09/2024,5kW,F-2,,F19,SN-2\n" +
	"07-09-2024,5kW,,,F19,SN-3\n" +
	"31-02-2024,5kW,F-4,,F19,SN-4\n" +
	"08-09-2024,,F-5\n" +
	"05-09-2024,3Ph,F-1,Hybrid,MPPT short,SN-1\n"

func newUC(repo *fakeWriter, inv *fakeInvalidator) *ImportCSVUseCase {
	var invalidator interface {
		InvalidateDashboard(ctx context.Context) error
	}
	if inv != nil {
		invalidator = inv
	}
	uc := NewImportCSVUseCase(repo, invalidator, pipeline.CSVOptions{HeaderLines: pipeline.DefaultHeaderLines}, time.UTC, nil)
	uc.newBatchID = func() string { return "batch-1" }
	return uc
}

func TestImportCSV_CountsCreatedDuplicatesAndSkipped(t *testing.T) {
	repo := &fakeWriter{}
	inv := &fakeInvalidator{}

	res, err := newUC(repo, inv).Execute(context.Background(), export)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// missing faulty serial, impossible date, missing rating
	want := ImportResult{BatchID: "batch-1", Created: 2, Duplicates: 1, Skipped: 3}
	if res != want {
		t.Fatalf("expected %+v, got %+v", want, res)
	}
	if inv.calls != 1 {
		t.Fatalf("expected one cache invalidation, got %d", inv.calls)
	}
}

func TestImportCSV_MapsRow(t *testing.T) {
	repo := &fakeWriter{}

	if _, err := newUC(repo, nil).Execute(context.Background(), export); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := repo.inserts[0]
	if !first.Date.Equal(time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected day-first date, got %v", first.Date)
	}
	if first.Type != "Hybrid" || first.Engineer != "A Kumar" || first.Status != "Done" || first.BatchID != "batch-1" {
		t.Fatalf("unexpected mapping: %+v", first)
	}
	if first.DedupeKey != "2024-09-05|F-1|SN-1" {
		t.Fatalf("unexpected dedupe key %q", first.DedupeKey)
	}

	second := repo.inserts[1]
	if !second.Date.Equal(time.Date(2024, 9, 6, 0, 0, 0, 0, time.UTC)) || second.Status != "OPEN" {
		t.Fatalf("unexpected second row: %+v", second)
	}
}

func TestImportCSV_ReimportIsIdempotent(t *testing.T) {
	repo := &fakeWriter{}
	inv := &fakeInvalidator{}
	uc := newUC(repo, inv)

	if _, err := uc.Execute(context.Background(), export); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := uc.Execute(context.Background(), export)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created != 0 || res.Duplicates != 3 {
		t.Fatalf("expected only duplicates, got %+v", res)
	}
	if inv.calls != 1 {
		t.Fatalf("nothing new, cache must stay: %d invalidations", inv.calls)
	}
}

func TestImportCSV_Empty(t *testing.T) {
	repo := &fakeWriter{}
	_, err := newUC(repo, nil).Execute(context.Background(), " \n ")
	if !errors.Is(err, ErrEmptyImport) {
		t.Fatalf("expected ErrEmptyImport, got %v", err)
	}
	if len(repo.inserts) != 0 {
		t.Fatalf("nothing should be inserted")
	}
}

func TestImportCSV_RepositoryError(t *testing.T) {
	repo := &fakeWriter{Err: errors.New("db failure")}
	inv := &fakeInvalidator{}

	res, err := newUC(repo, inv).Execute(context.Background(), export)
	if err == nil || !errors.Is(err, repo.Err) {
		t.Fatalf("expected db failure, got %v", err)
	}
	if res.Created != 0 || inv.calls != 0 {
		t.Fatalf("unexpected result on error: %+v (invalidations %d)", res, inv.calls)
	}
}

func TestImportCSV_PartialFailureInvalidatesCache(t *testing.T) {
	repo := &fakeWriter{Err: errors.New("db failure"), FailAt: 2}
	inv := &fakeInvalidator{}

	res, err := newUC(repo, inv).Execute(context.Background(), export)
	if !errors.Is(err, repo.Err) {
		t.Fatalf("expected db failure, got %v", err)
	}
	if res.Created != 1 {
		t.Fatalf("expected the first row stored, got %+v", res)
	}
	if inv.calls != 1 {
		t.Fatalf("stored rows must invalidate the cache, got %d invalidations", inv.calls)
	}
}

func TestImportCSV_InvalidationFailureIsIgnored(t *testing.T) {
	inv := &fakeInvalidator{err: errors.New("redis down")}
	res, err := newUC(&fakeWriter{}, inv).Execute(context.Background(), export)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created != 2 {
		t.Fatalf("expected rows stored, got %+v", res)
	}
}

func TestNewImportCSVUseCase_GeneratesBatchIDs(t *testing.T) {
	uc := NewImportCSVUseCase(&fakeWriter{}, nil, pipeline.CSVOptions{}, nil, nil)
	a, _ := uc.Execute(context.Background(), "01-01-2024,3Ph,F-1")
	b, _ := uc.Execute(context.Background(), "01-01-2024,3Ph,F-1")
	if a.BatchID == "" || a.BatchID == b.BatchID {
		t.Fatalf("expected distinct batch ids, got %q and %q", a.BatchID, b.BatchID)
	}
}
