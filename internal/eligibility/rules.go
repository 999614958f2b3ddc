package eligibility

import "time"

// Evaluate applies the extra-benefit policy to a profile.
// This is pure domain logic - no I/O, no side effects.
// Rule priority (fail-fast, first failure wins):
//  1. Age within 18-65
//  2. Plan tier (Premium, or Essential with 12+ months)
//  3. Waiting period completed
//  4. No chronic conditions on file
//  5. At most 3 dependents
//  6. Approved checkup in the last 6 months
//  7. No overdue invoices
//  8. Region inside the coverage area
func Evaluate(profile ApplicantProfile) Verdict {
	// Rule 1: Age
	if !profile.IsAgeInRange() {
		return Rejected(ReasonAgeOutOfRange)
	}

	// Rule 2: Plan tier
	if !profile.IsPlanEligible() {
		return Rejected(ReasonPlanNotEligible)
	}

	// Rule 3: Waiting period (carência)
	if !profile.WaitingPeriodCompleted {
		return Rejected(ReasonWaitingPeriodIncomplete)
	}

	// Rule 4: Chronic conditions
	if profile.HasChronicConditions {
		return Rejected(ReasonHasChronicConditions)
	}

	// Rule 5: Dependents; an unreadable count rejects
	if profile.HasTooManyDependents() {
		return Rejected(ReasonTooManyDependents)
	}

	// Rule 6: Recent checkups
	if !profile.HadRecentCheckups {
		return Rejected(ReasonNoRecentCheckup)
	}

	// Rule 7: Overdue invoices
	if profile.HasOverdueInvoices {
		return Rejected(ReasonHasOverdueInvoice)
	}

	// Rule 8: Coverage region
	if !IsCoveredRegion(profile.Region) {
		return Rejected(ReasonRegionNotCovered)
	}

	return Approved()
}

// BuildResult pairs a verdict with its user-facing notice.
func BuildResult(verdict Verdict, evalTime time.Time) *EvaluateResult {
	return &EvaluateResult{
		Verdict:     verdict,
		Notice:      NoticeFor(verdict),
		EvaluatedAt: evalTime,
	}
}
