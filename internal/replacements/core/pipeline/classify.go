package pipeline

import (
	"fmt"
	"strings"

	"replacement-metrics-service/internal/replacements/core/domain"
)

// IssuePolicy decides what happens to issue text no rule matches.
type IssuePolicy int

const (
	// OmitUnmatched emits only non-empty buckets; unmatched text is not counted.
	OmitUnmatched IssuePolicy = iota
	// OtherBucket emits every named bucket plus a trailing "Other" bucket.
	OtherBucket
)

// FaultCodeMode decides whether numeric fault codes get a bucket each or
// share a single "Error codes" bucket.
type FaultCodeMode int

const (
	IndividualCodes FaultCodeMode = iota
	GroupedCodes
)

// Category labels.
const (
	CategoryMPPTShort     = "MPPT Short"
	CategoryDisplayOff    = "Inverter Display off"
	CategoryCommunication = "AP signal / Communication error"
	CategoryWarning       = "Warning error"
	CategorySelfCheck     = "Self check Repeat error"
	CategoryErrorCodes    = "Error codes"
	CategoryOther         = "Other"
)

// IssueRule pairs a predicate over lower-cased issue text with a label.
type IssueRule struct {
	Label string
	Match func(issue string) bool
}

// ContainsAny matches when the issue contains at least one of the keywords.
func ContainsAny(keywords ...string) func(string) bool {
	return func(issue string) bool {
		for _, k := range keywords {
			if strings.Contains(issue, k) {
				return true
			}
		}
		return false
	}
}

// DefaultRules is the ordered rule table. Fault codes sit ahead of the
// generic keywords that would otherwise swallow them.
func DefaultRules(mode FaultCodeMode) []IssueRule {
	code := func(c string) IssueRule {
		label := strings.ToUpper(c)
		if mode == GroupedCodes {
			label = CategoryErrorCodes
		}
		return IssueRule{Label: label, Match: ContainsAny(c)}
	}

	return []IssueRule{
		{Label: CategoryMPPTShort, Match: ContainsAny("mppt")},
		code("f19"),
		code("f39"),
		code("f55"),
		code("f30"),
		code("f10"),
		{Label: CategoryDisplayOff, Match: ContainsAny("display off", "display blank")},
		{Label: CategoryCommunication, Match: ContainsAny("ap", "communication", "com", "logger", "wifi")},
		{Label: CategoryWarning, Match: ContainsAny("warning")},
		{Label: CategorySelfCheck, Match: ContainsAny("self check")},
	}
}

// Classifier evaluates an ordered rule table, first match wins.
type Classifier struct {
	rules      []IssueRule
	policy     IssuePolicy
	vocabulary []string
}

// NewClassifier builds a classifier. Output buckets follow the first
// appearance of each label in rules.
func NewClassifier(rules []IssueRule, policy IssuePolicy) *Classifier {
	seen := make(map[string]bool, len(rules))
	vocab := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		if !seen[r.Label] {
			seen[r.Label] = true
			vocab = append(vocab, r.Label)
		}
	}
	if policy == OtherBucket && !seen[CategoryOther] {
		vocab = append(vocab, CategoryOther)
	}
	return &Classifier{rules: rules, policy: policy, vocabulary: vocab}
}

// DefaultClassifier uses individual fault codes and omits unmatched text.
func DefaultClassifier() *Classifier {
	return NewClassifier(DefaultRules(IndividualCodes), OmitUnmatched)
}

// ParseIssuePolicy accepts "omit" and "other".
func ParseIssuePolicy(s string) (IssuePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "omit":
		return OmitUnmatched, nil
	case "other":
		return OtherBucket, nil
	}
	return 0, fmt.Errorf("unknown issue policy %q", s)
}

// ParseFaultCodeMode accepts "individual" and "grouped".
func ParseFaultCodeMode(s string) (FaultCodeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "individual":
		return IndividualCodes, nil
	case "grouped":
		return GroupedCodes, nil
	}
	return 0, fmt.Errorf("unknown fault code mode %q", s)
}

// Vocabulary lists the buckets in output order.
func (c *Classifier) Vocabulary() []string {
	return append([]string(nil), c.vocabulary...)
}

// Classify returns the category of one issue text. Blank text is never
// classified; unmatched text lands in "Other" only under OtherBucket.
func (c *Classifier) Classify(issue string) (string, bool) {
	text := strings.ToLower(strings.TrimSpace(issue))
	if text == "" {
		return "", false
	}
	for _, r := range c.rules {
		if r.Match(text) {
			return r.Label, true
		}
	}
	if c.policy == OtherBucket {
		return CategoryOther, true
	}
	return "", false
}

// Counts buckets the issues of records.
func (c *Classifier) Counts(records []domain.ReplacementRecord) []domain.LabelCount {
	counts := make(map[string]int, len(c.vocabulary))
	for _, rec := range records {
		if label, ok := c.Classify(rec.Issue); ok {
			counts[label]++
		}
	}

	out := make([]domain.LabelCount, 0, len(c.vocabulary))
	for _, label := range c.vocabulary {
		n := counts[label]
		if n == 0 && c.policy == OmitUnmatched {
			continue
		}
		out = append(out, domain.LabelCount{Label: label, Count: n})
	}
	return out
}

// ClassifyIssues counts categories with the default classifier.
func ClassifyIssues(records []domain.ReplacementRecord) []domain.LabelCount {
	return DefaultClassifier().Counts(records)
}
