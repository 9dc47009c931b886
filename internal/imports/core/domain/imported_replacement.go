package domain

import "time"

// ImportedReplacement is one export row ready for storage.
type ImportedReplacement struct {
	Date                    time.Time
	Rating                  string
	FaultySerialNumber      string
	Type                    string
	Issue                   string
	ReplacementSerialNumber string
	Customer                string
	Engineer                string
	Status                  string
	State                   string
	StockType               string
	AdditionalComments      string
	Remark                  string
	BatchID                 string
	DedupeKey               string
}
