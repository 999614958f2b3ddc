package eligibility

import (
	"strconv"
	"strings"
)

// FormInput holds the answers exactly as the form collected them. Numeric
// fields are raw text; pickers carry their selected value.
type FormInput struct {
	Age                    string
	PlanTier               string
	MonthsActive           string
	WaitingPeriodCompleted bool
	HasChronicConditions   bool
	DependentsCount        string
	HadRecentCheckups      bool
	HasOverdueInvoices     bool
	Region                 string
}

// Profile converts raw answers into an ApplicantProfile. It never fails:
// unreadable numbers become invalid FormInts and unknown plans stay
// unrecognized, so the policy rejects them instead of the parser.
func (in FormInput) Profile() ApplicantProfile {
	return ApplicantProfile{
		Age:                    ParseFormInt(in.Age),
		PlanTier:               ParsePlanTier(in.PlanTier),
		MonthsActive:           ParseFormInt(in.MonthsActive),
		WaitingPeriodCompleted: in.WaitingPeriodCompleted,
		HasChronicConditions:   in.HasChronicConditions,
		DependentsCount:        ParseFormInt(in.DependentsCount),
		HadRecentCheckups:      in.HadRecentCheckups,
		HasOverdueInvoices:     in.HasOverdueInvoices,
		Region:                 in.Region,
	}
}

// ParseFormInt reads a non-negative base-10 integer typed into a numeric field.
// Surrounding whitespace is ignored; signs other than a leading '+', fractions,
// overflow and empty input all yield an invalid value.
func ParseFormInt(raw string) FormInt {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return Invalid()
	}
	return Int(n)
}

// planAliases maps picker labels and canonical names (lower-cased) to tiers.
var planAliases = map[string]PlanTier{
	"basic":     PlanBasic,
	"básico":    PlanBasic,
	"basico":    PlanBasic,
	"essential": PlanEssential,
	"essencial": PlanEssential,
	"premium":   PlanPremium,
}

// ParsePlanTier resolves a picker value to a PlanTier. Unrecognized values are
// returned verbatim and fail the plan rule.
func ParsePlanTier(raw string) PlanTier {
	if tier, ok := planAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return tier
	}
	return PlanTier(raw)
}
