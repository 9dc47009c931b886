package pipeline

import (
	"strings"
	"unicode/utf8"

	"replacement-metrics-service/internal/replacements/core/domain"
)

// DefaultEngineerLimit caps the engineer view.
const DefaultEngineerLimit = 8

func isEngineerDelimiter(r rune) bool {
	return r == '/' || r == ',' || r == '&'
}

// EngineerIdentities splits an engineer field into identities. Each
// token is trimmed and upper-cased; single-character tokens are noise.
// The identity is the first word of the token, so "J SMITH" and
// "J SMITH JR" both become "J".
func EngineerIdentities(field string) []string {
	var ids []string
	for _, tok := range strings.FieldsFunc(field, isEngineerDelimiter) {
		tok = strings.ToUpper(strings.TrimSpace(tok))
		if utf8.RuneCountInString(tok) <= 1 {
			continue
		}
		ids = append(ids, strings.Fields(tok)[0])
	}
	return ids
}

// EngineerStats returns the top DefaultEngineerLimit identities.
func EngineerStats(records []domain.ReplacementRecord) []domain.LabelCount {
	return TopEngineers(records, DefaultEngineerLimit)
}

// TopEngineers counts every assignment and keeps the limit busiest
// identities; ties keep first-seen order. limit <= 0 keeps all.
func TopEngineers(records []domain.ReplacementRecord, limit int) []domain.LabelCount {
	c := newCounter()
	for _, r := range records {
		for _, id := range EngineerIdentities(r.Engineer) {
			c.add(id)
		}
	}
	out := c.byCountDesc()
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
