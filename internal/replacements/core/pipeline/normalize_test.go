package pipeline_test

import (
	"testing"
	"time"

	"replacement-metrics-service/internal/replacements/core/domain"
	"replacement-metrics-service/internal/replacements/core/pipeline"

	"github.com/google/go-cmp/cmp"
)

func strp(s string) *string { return &s }

func TestNormalize_AppliesDefaults(t *testing.T) {
	got := pipeline.Normalize([]domain.RawRow{{}, {}})

	want := []domain.ReplacementRecord{
		{ID: 1, Status: domain.DefaultStatus},
		{ID: 2, Status: domain.DefaultStatus},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_CopiesFieldsAndFormatsTimestamp(t *testing.T) {
	id := int64(42)
	ts := time.Date(2024, 9, 5, 8, 0, 0, 0, time.UTC)

	got := pipeline.Normalize([]domain.RawRow{{
		ID:                      &id,
		Date:                    &ts,
		Rating:                  strp("3Ph"),
		FaultySerialNumber:      strp("SN1"),
		Type:                    strp("hybrid"),
		Issue:                   strp("F19"),
		ReplacementSerialNumber: strp("SN2"),
		Customer:                strp("Acme"),
		Engineer:                strp("A Kumar"),
		Status:                  strp("Pending"),
		State:                   strp("Kerala"),
		StockType:               strp("New"),
		AdditionalComments:      strp("none"),
		Remark:                  strp("ok"),
	}})

	want := []domain.ReplacementRecord{{
		ID: 42, Date: "05/09/2024", Rating: "3Ph", FaultySerialNumber: "SN1",
		Issue: "F19", ReplacementSN: "SN2", Customer: "Acme", Engineer: "A Kumar",
		Status: "Pending", State: "Kerala", StockType: "New",
		AdditionalComments: "none", Remark: "ok",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_EmptyStatusGetsDefault(t *testing.T) {
	got := pipeline.Normalize([]domain.RawRow{{Status: strp("")}})
	if got[0].Status != domain.DefaultStatus {
		t.Fatalf("expected %s, got %q", domain.DefaultStatus, got[0].Status)
	}
}

func TestNormalize_DateTextPassesThrough(t *testing.T) {
	got := pipeline.Normalize([]domain.RawRow{{DateText: strp("9/5/2024")}})
	if got[0].Date != "9/5/2024" {
		t.Fatalf("expected date text unchanged, got %q", got[0].Date)
	}
}

func TestNormalizer_RendersInLocation(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	ts := time.Date(2024, 9, 5, 20, 0, 0, 0, time.UTC)

	got := pipeline.Normalizer{Location: ist}.Normalize([]domain.RawRow{{Date: &ts}})
	if got[0].Date != "06/09/2024" {
		t.Fatalf("expected 06/09/2024, got %q", got[0].Date)
	}
}

func TestNormalize_IsStableOnCanonicalRecords(t *testing.T) {
	recs := pipeline.ParseCSV(titleBlock +
		"01-02-2024,3Ph,SN100,,MPPT short,,,Done,Cust,ENG A,New,,\n" +
		"9/5/2024,5kW,SN200,,F39,SN201,Pending,,,,,late,\n")

	raw := make([]domain.RawRow, 0, len(recs))
	for _, r := range recs {
		raw = append(raw, pipeline.ToRaw(r))
	}

	if diff := cmp.Diff(recs, pipeline.Normalize(raw)); diff != "" {
		t.Fatalf("round trip changed records (-want +got):\n%s", diff)
	}
}
