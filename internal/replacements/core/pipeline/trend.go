package pipeline

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"replacement-metrics-service/internal/replacements/core/domain"
)

// DefaultFallbackYear stands in for dates that carry no usable year.
const DefaultFallbackYear = 2025

// TrendOptions controls TrendReport.
type TrendOptions struct {
	FallbackYear int
	// DayFirst reads dates as day/month/year instead of month/day/year.
	DayFirst bool
}

// Trend is the monthly view plus the data-quality counters behind it.
type Trend struct {
	Buckets []domain.LabelCount
	// Fallbacks counts dates whose year was missing or unreadable.
	Fallbacks int
	// Skipped counts non-blank dates with no readable month.
	Skipped int
}

type monthKey struct {
	year  int
	month int
}

// MonthlyTrend buckets records by month/yy in chronological order.
func MonthlyTrend(records []domain.ReplacementRecord) []domain.LabelCount {
	return TrendReport(records, TrendOptions{FallbackYear: DefaultFallbackYear}).Buckets
}

// TrendReport reads the first date component as the month (the second
// with DayFirst) and the third as the year; "/" and "-" both separate
// components. Buckets are sorted by (year, month) numerically.
func TrendReport(records []domain.ReplacementRecord, opts TrendOptions) Trend {
	fallback := opts.FallbackYear
	if fallback == 0 {
		fallback = DefaultFallbackYear
	}

	var t Trend
	counts := make(map[monthKey]int)
	for _, r := range records {
		date := strings.TrimSpace(r.Date)
		if date == "" {
			continue
		}

		parts := splitDate(date)
		if len(parts) < 2 {
			t.Skipped++
			continue
		}
		monthPart := parts[0]
		if opts.DayFirst {
			monthPart = parts[1]
		}
		month, err := strconv.Atoi(strings.TrimSpace(monthPart))
		if err != nil || month < 1 || month > 12 {
			t.Skipped++
			continue
		}

		year, ok := 0, false
		if len(parts) >= 3 {
			year, ok = leadingYear(parts[2])
		}
		if !ok {
			year = fallback
			t.Fallbacks++
		}

		counts[monthKey{year: year, month: month}]++
	}

	keys := make([]monthKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b monthKey) int {
		if c := cmp.Compare(a.year, b.year); c != 0 {
			return c
		}
		return cmp.Compare(a.month, b.month)
	})

	t.Buckets = make([]domain.LabelCount, 0, len(keys))
	for _, k := range keys {
		t.Buckets = append(t.Buckets, domain.LabelCount{
			Label: fmt.Sprintf("%d/%02d", k.month, k.year%100),
			Count: counts[k],
		})
	}
	return t
}

func splitDate(date string) []string {
	if !strings.Contains(date, "/") && strings.Contains(date, "-") {
		return strings.Split(date, "-")
	}
	return strings.Split(date, "/")
}

// leadingYear reads the digits at the start of s ("2024 10:30" -> 2024).
// Two-digit years are taken as 20yy.
func leadingYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	y, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	if end <= 2 {
		y += 2000
	}
	return y, true
}
