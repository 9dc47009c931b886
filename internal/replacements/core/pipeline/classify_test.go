package pipeline_test

import (
	"testing"

	"replacement-metrics-service/internal/replacements/core/domain"
	"replacement-metrics-service/internal/replacements/core/pipeline"

	"github.com/google/go-cmp/cmp"
)

func issues(texts ...string) []domain.ReplacementRecord {
	out := make([]domain.ReplacementRecord, 0, len(texts))
	for i, s := range texts {
		out = append(out, domain.ReplacementRecord{ID: int64(i + 1), Issue: s})
	}
	return out
}

func TestClassifier_Classify(t *testing.T) {
	c := pipeline.DefaultClassifier()

	tests := []struct {
		issue string
		want  string
		ok    bool
	}{
		{"MPPT short", pipeline.CategoryMPPTShort, true},
		{"F19 error", "F19", true},
		{"f39", "F39", true},
		{"Display Blank after storm", pipeline.CategoryDisplayOff, true},
		{"Wifi down", pipeline.CategoryCommunication, true},
		{"logger issue", pipeline.CategoryCommunication, true},
		{"F55", "F55", true},
		{"warning light", pipeline.CategoryWarning, true},
		{"F30 grid", "F30", true},
		{"f10 overvoltage", "F10", true},
		{"self check repeat", pipeline.CategorySelfCheck, true},
		// ordering: codes and mppt win over the generic keywords
		{"f19 communication lost", "F19", true},
		{"mppt f19", pipeline.CategoryMPPTShort, true},
		{"F10 capacitor failure", "F10", true},
		{"F55 after component swap", "F55", true},
		{"F30 warning on panel", "F30", true},
		{"display off f39", "F39", true},
		{"unknown fault", "", false},
		{"   ", "", false},
	}

	for _, tt := range tests {
		got, ok := c.Classify(tt.issue)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)", tt.issue, got, ok, tt.want, tt.ok)
		}
	}
}

func TestClassifyIssues_OmitsEmptyBuckets(t *testing.T) {
	got := pipeline.ClassifyIssues(issues("MPPT short", "mppt", "F19", "unknown fault", ""))

	want := []domain.LabelCount{
		{Label: pipeline.CategoryMPPTShort, Count: 2},
		{Label: "F19", Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifier_GroupedCodesWithOther(t *testing.T) {
	c := pipeline.NewClassifier(pipeline.DefaultRules(pipeline.GroupedCodes), pipeline.OtherBucket)

	got := c.Counts(issues("MPPT short", "mppt", "F39 fault", "unknown fault", ""))

	want := []domain.LabelCount{
		{Label: pipeline.CategoryMPPTShort, Count: 2},
		{Label: pipeline.CategoryErrorCodes, Count: 1},
		{Label: pipeline.CategoryDisplayOff, Count: 0},
		{Label: pipeline.CategoryCommunication, Count: 0},
		{Label: pipeline.CategoryWarning, Count: 0},
		{Label: pipeline.CategorySelfCheck, Count: 0},
		{Label: pipeline.CategoryOther, Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifier_OtherPolicyIsTotal(t *testing.T) {
	c := pipeline.NewClassifier(pipeline.DefaultRules(pipeline.IndividualCodes), pipeline.OtherBucket)
	recs := issues("F19", "inverter burnt", "display off", "", "self check", "random")

	sum := 0
	for _, lc := range c.Counts(recs) {
		sum += lc.Count
	}
	if sum != 5 {
		t.Fatalf("expected every non-blank issue counted once (5), got %d", sum)
	}
}

func TestClassifier_VocabularyFollowsRuleOrder(t *testing.T) {
	got := pipeline.DefaultClassifier().Vocabulary()
	want := []string{
		pipeline.CategoryMPPTShort, "F19", "F39", "F55", "F30", "F10",
		pipeline.CategoryDisplayOff, pipeline.CategoryCommunication, pipeline.CategoryWarning,
		pipeline.CategorySelfCheck,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePolicies(t *testing.T) {
	if p, err := pipeline.ParseIssuePolicy("Other"); err != nil || p != pipeline.OtherBucket {
		t.Fatalf("unexpected policy: %v, %v", p, err)
	}
	if _, err := pipeline.ParseIssuePolicy("sometimes"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
	if m, err := pipeline.ParseFaultCodeMode("grouped"); err != nil || m != pipeline.GroupedCodes {
		t.Fatalf("unexpected mode: %v, %v", m, err)
	}
	if _, err := pipeline.ParseFaultCodeMode("both"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestNewOptions(t *testing.T) {
	opts, err := pipeline.NewOptions(pipeline.Settings{IssuePolicy: "other", FaultCodes: "grouped", EngineerLimit: 3, DayFirst: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.EngineerLimit != 3 || !opts.Trend.DayFirst || opts.Trend.FallbackYear != pipeline.DefaultFallbackYear {
		t.Fatalf("unexpected options: %+v", opts)
	}
	vocab := opts.Classifier.Vocabulary()
	if vocab[len(vocab)-1] != pipeline.CategoryOther {
		t.Fatalf("expected Other bucket last, got %v", vocab)
	}

	if _, err := pipeline.NewOptions(pipeline.Settings{IssuePolicy: "drop"}); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
	if _, err := pipeline.NewOptions(pipeline.Settings{FaultCodes: "some"}); err == nil {
		t.Fatalf("expected error for unknown fault code mode")
	}
}
