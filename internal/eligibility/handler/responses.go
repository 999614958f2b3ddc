package handler

import (
	"time"

	"benefitcheck/internal/eligibility"
)

// EvaluateResponse is the HTTP response for POST /v1/eligibility/evaluate.
type EvaluateResponse struct {
	Status      string    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// FromResult converts a domain EvaluateResult to an HTTP response.
func FromResult(result *eligibility.EvaluateResult) *EvaluateResponse {
	return &EvaluateResponse{
		Status:      string(result.Verdict.Status),
		Reason:      string(result.Verdict.Reason),
		Title:       result.Notice.Title,
		Message:     result.Notice.Message,
		EvaluatedAt: result.EvaluatedAt,
	}
}

// OptionResponse is one picker entry.
type OptionResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// OptionsResponse is the HTTP response for GET /v1/eligibility/options.
type OptionsResponse struct {
	PlanTiers       []OptionResponse `json:"plan_tiers"`
	Regions         []OptionResponse `json:"regions"`
	CoverageRegions []string         `json:"coverage_regions"`
}

func fromOptions(opts []eligibility.PickerOption) []OptionResponse {
	out := make([]OptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, OptionResponse{Label: o.Label, Value: o.Value})
	}
	return out
}

// NewOptionsResponse builds the picker catalogue.
func NewOptionsResponse() *OptionsResponse {
	return &OptionsResponse{
		PlanTiers:       fromOptions(eligibility.PlanOptions()),
		Regions:         fromOptions(eligibility.RegionOptions()),
		CoverageRegions: eligibility.CoverageRegions(),
	}
}
