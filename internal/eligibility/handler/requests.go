package handler

import (
	"bytes"
	"encoding/json"

	"benefitcheck/internal/eligibility"
	dErrors "benefitcheck/pkg/domain-errors"
)

// FormValue is a numeric form answer. The form sends what the user typed, so it
// accepts both JSON strings and JSON numbers and keeps the raw text; parsing is
// left to the policy so that unreadable input becomes a rejection.
type FormValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = FormValue(n.String())
		return nil
	}
}

// EvaluateRequest is the HTTP request body for POST /v1/eligibility/evaluate.
type EvaluateRequest struct {
	Age                    FormValue `json:"age"`
	PlanTier               string    `json:"plan_tier"`
	MonthsActive           FormValue `json:"months_active"`
	WaitingPeriodCompleted bool      `json:"waiting_period_completed"`
	HasChronicConditions   bool      `json:"has_chronic_conditions"`
	DependentsCount        FormValue `json:"dependents_count"`
	HadRecentCheckups      bool      `json:"had_recent_checkups"`
	HasOverdueInvoices     bool      `json:"has_overdue_invoices"`
	Region                 string    `json:"region"`

	// Parsed values (populated by Validate)
	parsedProfile eligibility.ApplicantProfile
}

// Validate parses the answers.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
// Unreadable or oversized answers are not validation errors: they reach the
// policy and produce a rejection. The body limit bounds their size.
func (r *EvaluateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.parsedProfile = eligibility.FormInput{
		Age:                    string(r.Age),
		PlanTier:               r.PlanTier,
		MonthsActive:           string(r.MonthsActive),
		WaitingPeriodCompleted: r.WaitingPeriodCompleted,
		HasChronicConditions:   r.HasChronicConditions,
		DependentsCount:        string(r.DependentsCount),
		HadRecentCheckups:      r.HadRecentCheckups,
		HasOverdueInvoices:     r.HasOverdueInvoices,
		Region:                 r.Region,
	}.Profile()
	return nil
}

// ParsedProfile returns the profile built by Validate.
func (r *EvaluateRequest) ParsedProfile() eligibility.ApplicantProfile {
	return r.parsedProfile
}
