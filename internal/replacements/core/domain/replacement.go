package domain

import "time"

// DefaultStatus is assigned when the source row carries no status.
const DefaultStatus = "OPEN"

// ReplacementRecord is the canonical, fully-defaulted shape of one
// replacement event. Every field is a plain string; absence is "".
type ReplacementRecord struct {
	ID                 int64  `json:"id"`
	Date               string `json:"date"` // dd/mm/yyyy or the source text as-is
	Rating             string `json:"rating"`
	FaultySerialNumber string `json:"faultySerialNumber"`
	Issue              string `json:"issue"`
	ReplacementSN      string `json:"replacementSN"`
	Customer           string `json:"customer"`
	Engineer           string `json:"engineer"`
	Status             string `json:"status"`
	State              string `json:"state"`
	StockType          string `json:"stockType"`
	AdditionalComments string `json:"additionalComments"`
	Remark             string `json:"remark"`
}

// RawRow is a loosely populated row as fetched from storage. Any field may be
// nil. Date wins over DateText when both are set.
type RawRow struct {
	ID                      *int64
	Date                    *time.Time
	DateText                *string
	Rating                  *string
	FaultySerialNumber      *string
	Type                    *string
	Issue                   *string
	ReplacementSerialNumber *string
	Customer                *string
	Engineer                *string
	Status                  *string
	State                   *string
	StockType               *string
	AdditionalComments      *string
	Remark                  *string
}

// LabelCount is one bucket of an aggregate view.
type LabelCount struct {
	Label string `json:"name"`
	Count int    `json:"count"`
}

// Dashboard is the view model handed to the presentation layer.
type Dashboard struct {
	Total           int                 `json:"total"`
	Pending         int                 `json:"pending"`
	Completed       int                 `json:"completed"`
	UniqueEngineers int                 `json:"unique_engineers"`
	IssueCategories []LabelCount        `json:"issue_categories"`
	Engineers       []LabelCount        `json:"engineers"`
	Ratings         []LabelCount        `json:"ratings"`
	States          []LabelCount        `json:"states"`
	MonthlyTrend    []LabelCount        `json:"monthly_trend"`
	TrendFallbacks  int                 `json:"trend_fallbacks"`
	TrendSkipped    int                 `json:"trend_skipped"`
	Filters         map[string][]string `json:"filters"`
}
