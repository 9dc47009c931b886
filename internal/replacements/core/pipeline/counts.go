package pipeline

import (
	"cmp"
	"slices"
	"strings"

	"replacement-metrics-service/internal/replacements/core/domain"
)

// counter keeps labels in first-seen order so a stable sort breaks ties
// by that order.
type counter struct {
	index   map[string]int
	buckets []domain.LabelCount
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(label string) {
	if i, ok := c.index[label]; ok {
		c.buckets[i].Count++
		return
	}
	c.index[label] = len(c.buckets)
	c.buckets = append(c.buckets, domain.LabelCount{Label: label, Count: 1})
}

// byCountDesc returns the buckets sorted by descending count.
func (c *counter) byCountDesc() []domain.LabelCount {
	out := slices.Clone(c.buckets)
	if out == nil {
		out = []domain.LabelCount{}
	}
	slices.SortStableFunc(out, func(a, b domain.LabelCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return out
}

func countField(records []domain.ReplacementRecord, get func(domain.ReplacementRecord) string) []domain.LabelCount {
	c := newCounter()
	for _, r := range records {
		v := get(r)
		if strings.TrimSpace(v) == "" {
			continue
		}
		c.add(v)
	}
	return c.byCountDesc()
}

// RatingStats counts records per rating label, most frequent first.
func RatingStats(records []domain.ReplacementRecord) []domain.LabelCount {
	return countField(records, func(r domain.ReplacementRecord) string { return r.Rating })
}

// StateStats counts records per state.
func StateStats(records []domain.ReplacementRecord) []domain.LabelCount {
	return countField(records, func(r domain.ReplacementRecord) string { return r.State })
}

// CountPending counts records whose status mentions "pending".
func CountPending(records []domain.ReplacementRecord) int {
	n := 0
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Status), "pending") {
			n++
		}
	}
	return n
}

// CountCompleted counts records whose status mentions "done" or "replaced".
func CountCompleted(records []domain.ReplacementRecord) int {
	n := 0
	for _, r := range records {
		s := strings.ToLower(r.Status)
		if strings.Contains(s, "done") || strings.Contains(s, "replaced") {
			n++
		}
	}
	return n
}
