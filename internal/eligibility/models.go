package eligibility

import (
	"slices"
	"time"
)

// Policy limits for the extra benefit.
const (
	MinAge             = 18
	MaxAge             = 65
	MinEssentialMonths = 12
	MaxDependents      = 3
)

// coverageRegions is the fixed, ordered allow-list of states served by the
// benefit. Never mutate; CoverageRegions hands out copies.
var coverageRegions = []string{"São Paulo", "Minas Gerais", "Paraná"}

// CoverageRegions returns the regions eligible for the benefit, in display order.
func CoverageRegions() []string {
	return slices.Clone(coverageRegions)
}

// IsCoveredRegion reports whether region is an exact, case-sensitive member of
// the coverage list. No trimming or normalization is applied.
func IsCoveredRegion(region string) bool {
	return slices.Contains(coverageRegions, region)
}

// PlanTier is the contracted health plan level.
type PlanTier string

const (
	PlanBasic     PlanTier = "basic"
	PlanEssential PlanTier = "essential"
	PlanPremium   PlanTier = "premium"
)

func (p PlanTier) String() string {
	return string(p)
}

// FormInt is an integer typed into a free-text form field. Valid is false when
// the raw text was not a non-negative base-10 integer.
type FormInt struct {
	Value int
	Valid bool
}

// Int returns a valid FormInt holding v.
func Int(v int) FormInt {
	return FormInt{Value: v, Valid: v >= 0}
}

// Invalid returns a FormInt for unparsable input.
func Invalid() FormInt {
	return FormInt{}
}

// ApplicantProfile is the set of answers considered by the eligibility policy.
// It is built fresh for every evaluation and never stored.
type ApplicantProfile struct {
	Age                    FormInt
	PlanTier               PlanTier
	MonthsActive           FormInt
	WaitingPeriodCompleted bool
	HasChronicConditions   bool
	DependentsCount        FormInt
	HadRecentCheckups      bool
	HasOverdueInvoices     bool
	Region                 string
}

// IsAgeInRange reports whether age parsed and lies within [MinAge, MaxAge].
func (p ApplicantProfile) IsAgeInRange() bool {
	return p.Age.Valid && p.Age.Value >= MinAge && p.Age.Value <= MaxAge
}

// IsPlanEligible reports whether the plan qualifies: Premium always does,
// Essential only after MinEssentialMonths active months, Basic never.
func (p ApplicantProfile) IsPlanEligible() bool {
	switch p.PlanTier {
	case PlanPremium:
		return true
	case PlanEssential:
		return p.MonthsActive.Valid && p.MonthsActive.Value >= MinEssentialMonths
	default:
		return false
	}
}

// HasTooManyDependents is true when the count exceeds MaxDependents or could
// not be read at all.
func (p ApplicantProfile) HasTooManyDependents() bool {
	return !p.DependentsCount.Valid || p.DependentsCount.Value > MaxDependents
}

// Status is the top-level outcome of an evaluation.
type Status string

const (
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// RejectionReason identifies the first policy rule that failed.
type RejectionReason string

const (
	ReasonAgeOutOfRange           RejectionReason = "age_out_of_range"
	ReasonPlanNotEligible         RejectionReason = "plan_not_eligible"
	ReasonWaitingPeriodIncomplete RejectionReason = "waiting_period_incomplete"
	ReasonHasChronicConditions    RejectionReason = "has_chronic_conditions"
	ReasonTooManyDependents       RejectionReason = "too_many_dependents"
	ReasonNoRecentCheckup         RejectionReason = "no_recent_checkup"
	ReasonHasOverdueInvoice       RejectionReason = "has_overdue_invoice"
	ReasonRegionNotCovered        RejectionReason = "region_not_covered"
)

// RejectionReasons lists every reason in rule order.
func RejectionReasons() []RejectionReason {
	return []RejectionReason{
		ReasonAgeOutOfRange,
		ReasonPlanNotEligible,
		ReasonWaitingPeriodIncomplete,
		ReasonHasChronicConditions,
		ReasonTooManyDependents,
		ReasonNoRecentCheckup,
		ReasonHasOverdueInvoice,
		ReasonRegionNotCovered,
	}
}

// Verdict is either an approval (Reason empty) or a rejection with its reason.
type Verdict struct {
	Status Status
	Reason RejectionReason
}

// Approved is the verdict for a profile that passed every rule.
func Approved() Verdict {
	return Verdict{Status: StatusApproved}
}

// Rejected builds a rejection verdict.
func Rejected(reason RejectionReason) Verdict {
	return Verdict{Status: StatusRejected, Reason: reason}
}

// IsApproved reports whether the verdict grants the benefit.
func (v Verdict) IsApproved() bool {
	return v.Status == StatusApproved
}

// EvaluateResult is what the service returns to transports.
type EvaluateResult struct {
	Verdict     Verdict
	Notice      Notice
	EvaluatedAt time.Time
}
