package pipeline

import (
	"slices"
	"strings"

	"replacement-metrics-service/internal/replacements/core/domain"
)

// Field names a string attribute of a record.
type Field string

const (
	FieldDate               Field = "date"
	FieldRating             Field = "rating"
	FieldFaultySerialNumber Field = "faultySerialNumber"
	FieldIssue              Field = "issue"
	FieldReplacementSN      Field = "replacementSN"
	FieldCustomer           Field = "customer"
	FieldEngineer           Field = "engineer"
	FieldStatus             Field = "status"
	FieldState              Field = "state"
	FieldStockType          Field = "stockType"
	FieldAdditionalComments Field = "additionalComments"
	FieldRemark             Field = "remark"
)

// FilterFields are the fields the dashboard offers filter menus for.
var FilterFields = []Field{FieldStatus, FieldState, FieldRating, FieldCustomer, FieldStockType}

// Value reads the field from r. ok is false for an unknown field.
func (f Field) Value(r domain.ReplacementRecord) (string, bool) {
	switch f {
	case FieldDate:
		return r.Date, true
	case FieldRating:
		return r.Rating, true
	case FieldFaultySerialNumber:
		return r.FaultySerialNumber, true
	case FieldIssue:
		return r.Issue, true
	case FieldReplacementSN:
		return r.ReplacementSN, true
	case FieldCustomer:
		return r.Customer, true
	case FieldEngineer:
		return r.Engineer, true
	case FieldStatus:
		return r.Status, true
	case FieldState:
		return r.State, true
	case FieldStockType:
		return r.StockType, true
	case FieldAdditionalComments:
		return r.AdditionalComments, true
	case FieldRemark:
		return r.Remark, true
	}
	return "", false
}

// DistinctValues returns the sorted set of trimmed, non-blank values of
// field. An unknown field yields an empty list.
func DistinctValues(records []domain.ReplacementRecord, field Field) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range records {
		v, ok := field.Value(r)
		if !ok {
			return []string{}
		}
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
