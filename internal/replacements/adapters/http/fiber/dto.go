package fiber

import "replacement-metrics-service/internal/replacements/core/domain"

type CheckResponse struct {
	Message string `json:"message" example:"Running Successfully"`
}

// ReplacementResponse is the canonical replacement record
// @Description Replacement record DTO
type ReplacementResponse struct {
	ID                 int64  `json:"id"`
	Date               string `json:"date" example:"05/09/2024"`
	Rating             string `json:"rating"`
	FaultySerialNumber string `json:"faultySerialNumber"`
	Issue              string `json:"issue"`
	ReplacementSN      string `json:"replacementSN"`
	Customer           string `json:"customer"`
	Engineer           string `json:"engineer"`
	Status             string `json:"status" example:"OPEN"`
	State              string `json:"state"`
	StockType          string `json:"stockType"`
	AdditionalComments string `json:"additionalComments"`
	Remark             string `json:"remark"`
}

type LabelCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DashboardResponse struct {
	Total           int                  `json:"total"`
	Pending         int                  `json:"pending"`
	Completed       int                  `json:"completed"`
	UniqueEngineers int                  `json:"unique_engineers"`
	IssueCategories []LabelCountResponse `json:"issue_categories"`
	Engineers       []LabelCountResponse `json:"engineers"`
	Ratings         []LabelCountResponse `json:"ratings"`
	States          []LabelCountResponse `json:"states"`
	MonthlyTrend    []LabelCountResponse `json:"monthly_trend"`
	TrendFallbacks  int                  `json:"trend_fallbacks"`
	TrendSkipped    int                  `json:"trend_skipped"`
	Filters         map[string][]string  `json:"filters"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"not_found"`
	Message string `json:"message,omitempty" example:"replacement not found"`
}

func toReplacementResponse(r domain.ReplacementRecord) ReplacementResponse {
	return ReplacementResponse{
		ID:                 r.ID,
		Date:               r.Date,
		Rating:             r.Rating,
		FaultySerialNumber: r.FaultySerialNumber,
		Issue:              r.Issue,
		ReplacementSN:      r.ReplacementSN,
		Customer:           r.Customer,
		Engineer:           r.Engineer,
		Status:             r.Status,
		State:              r.State,
		StockType:          r.StockType,
		AdditionalComments: r.AdditionalComments,
		Remark:             r.Remark,
	}
}

func toReplacementResponses(records []domain.ReplacementRecord) []ReplacementResponse {
	out := make([]ReplacementResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toReplacementResponse(r))
	}
	return out
}

func toLabelCounts(in []domain.LabelCount) []LabelCountResponse {
	out := make([]LabelCountResponse, 0, len(in))
	for _, lc := range in {
		out = append(out, LabelCountResponse{Name: lc.Label, Count: lc.Count})
	}
	return out
}

func toDashboardResponse(d *domain.Dashboard) DashboardResponse {
	filters := d.Filters
	if filters == nil {
		filters = map[string][]string{}
	}
	return DashboardResponse{
		Total:           d.Total,
		Pending:         d.Pending,
		Completed:       d.Completed,
		UniqueEngineers: d.UniqueEngineers,
		IssueCategories: toLabelCounts(d.IssueCategories),
		Engineers:       toLabelCounts(d.Engineers),
		Ratings:         toLabelCounts(d.Ratings),
		States:          toLabelCounts(d.States),
		MonthlyTrend:    toLabelCounts(d.MonthlyTrend),
		TrendFallbacks:  d.TrendFallbacks,
		TrendSkipped:    d.TrendSkipped,
		Filters:         filters,
	}
}
