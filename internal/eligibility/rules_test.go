package eligibility

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// =============================================================================
// Eligibility Rules Test Suite
// =============================================================================
// The rule chain is the whole policy: ordering, boundaries, and the handling of
// unreadable numbers are what decide which message an applicant sees.

type RulesSuite struct {
	suite.Suite
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesSuite))
}

// eligibleProfile passes every rule; tests mutate one field at a time.
func eligibleProfile() ApplicantProfile {
	return ApplicantProfile{
		Age:                    Int(30),
		PlanTier:               PlanPremium,
		MonthsActive:           Int(0),
		WaitingPeriodCompleted: true,
		HasChronicConditions:   false,
		DependentsCount:        Int(2),
		HadRecentCheckups:      true,
		HasOverdueInvoices:     false,
		Region:                 "Minas Gerais",
	}
}

// =============================================================================
// Rule 1: Age
// =============================================================================

func (s *RulesSuite) TestAge() {
	tests := []struct {
		name     string
		age      FormInt
		expected Verdict
	}{
		{"17 is under age", Int(17), Rejected(ReasonAgeOutOfRange)},
		{"18 is the lower bound", Int(18), Approved()},
		{"65 is the upper bound", Int(65), Approved()},
		{"66 is over age", Int(66), Rejected(ReasonAgeOutOfRange)},
		{"unparsable age", Invalid(), Rejected(ReasonAgeOutOfRange)},
		{"zero", Int(0), Rejected(ReasonAgeOutOfRange)},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			p := eligibleProfile()
			p.Age = tt.age
			s.Equal(tt.expected, Evaluate(p))
		})
	}
}

func (s *RulesSuite) TestAgeFailureIgnoresEveryOtherField() {
	p := ApplicantProfile{
		Age:                  Int(17),
		PlanTier:             PlanBasic,
		MonthsActive:         Invalid(),
		HasChronicConditions: true,
		DependentsCount:      Invalid(),
		HasOverdueInvoices:   true,
		Region:               "Outros",
	}
	s.Equal(Rejected(ReasonAgeOutOfRange), Evaluate(p))
}

// =============================================================================
// Rule 2: Plan tier
// =============================================================================

func (s *RulesSuite) TestPlanTier() {
	tests := []struct {
		name     string
		tier     PlanTier
		months   FormInt
		expected Verdict
	}{
		{"basic never qualifies", PlanBasic, Int(120), Rejected(ReasonPlanNotEligible)},
		{"essential with 11 months", PlanEssential, Int(11), Rejected(ReasonPlanNotEligible)},
		{"essential with 12 months", PlanEssential, Int(12), Approved()},
		{"essential with unparsable months", PlanEssential, Invalid(), Rejected(ReasonPlanNotEligible)},
		{"premium ignores months", PlanPremium, Invalid(), Approved()},
		{"unknown tier", PlanTier("gold"), Int(24), Rejected(ReasonPlanNotEligible)},
		{"empty tier", PlanTier(""), Int(24), Rejected(ReasonPlanNotEligible)},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			p := eligibleProfile()
			p.PlanTier = tt.tier
			p.MonthsActive = tt.months
			s.Equal(tt.expected, Evaluate(p))
		})
	}
}

// =============================================================================
// Rules 3-7: Flags and dependents
// =============================================================================

func (s *RulesSuite) TestSingleFailingRule() {
	tests := []struct {
		name     string
		mutate   func(p *ApplicantProfile)
		expected RejectionReason
	}{
		{"waiting period incomplete", func(p *ApplicantProfile) { p.WaitingPeriodCompleted = false }, ReasonWaitingPeriodIncomplete},
		{"chronic conditions", func(p *ApplicantProfile) { p.HasChronicConditions = true }, ReasonHasChronicConditions},
		{"four dependents", func(p *ApplicantProfile) { p.DependentsCount = Int(4) }, ReasonTooManyDependents},
		{"unparsable dependents", func(p *ApplicantProfile) { p.DependentsCount = Invalid() }, ReasonTooManyDependents},
		{"no recent checkup", func(p *ApplicantProfile) { p.HadRecentCheckups = false }, ReasonNoRecentCheckup},
		{"overdue invoice", func(p *ApplicantProfile) { p.HasOverdueInvoices = true }, ReasonHasOverdueInvoice},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			p := eligibleProfile()
			tt.mutate(&p)
			s.Equal(Rejected(tt.expected), Evaluate(p))
		})
	}
}

func (s *RulesSuite) TestDependentsBoundary() {
	p := eligibleProfile()
	p.DependentsCount = Int(3)
	s.True(Evaluate(p).IsApproved(), "3 dependents is allowed")

	p.DependentsCount = Int(0)
	s.True(Evaluate(p).IsApproved(), "no dependents is allowed")

	// A negative count is unreadable, and unreadable counts fall under the
	// dependents rule.
	in := FormInput{
		Age: "30", PlanTier: "Premium", WaitingPeriodCompleted: true,
		DependentsCount: "-1", HadRecentCheckups: true, Region: "São Paulo",
	}
	s.Equal(Rejected(ReasonTooManyDependents), Evaluate(in.Profile()))
}

// =============================================================================
// Rule 8: Region
// =============================================================================

func (s *RulesSuite) TestRegion() {
	tests := []struct {
		region  string
		covered bool
	}{
		{"São Paulo", true},
		{"Minas Gerais", true},
		{"Paraná", true},
		{"sao paulo", false},
		{"são paulo", false},
		{" São Paulo", false},
		{"Paraná ", false},
		{"Outros", false},
		{"", false},
	}
	for _, tt := range tests {
		s.Run(tt.region, func() {
			p := eligibleProfile()
			p.Region = tt.region
			if tt.covered {
				s.Equal(Approved(), Evaluate(p))
			} else {
				s.Equal(Rejected(ReasonRegionNotCovered), Evaluate(p))
			}
		})
	}
}

// =============================================================================
// Ordering
// =============================================================================

func (s *RulesSuite) TestFirstFailureWins() {
	// Break every rule from the last to the first and check that the earliest
	// broken rule is always the one reported.
	breakers := []func(p *ApplicantProfile){
		func(p *ApplicantProfile) { p.Region = "Outros" },
		func(p *ApplicantProfile) { p.HasOverdueInvoices = true },
		func(p *ApplicantProfile) { p.HadRecentCheckups = false },
		func(p *ApplicantProfile) { p.DependentsCount = Int(9) },
		func(p *ApplicantProfile) { p.HasChronicConditions = true },
		func(p *ApplicantProfile) { p.WaitingPeriodCompleted = false },
		func(p *ApplicantProfile) { p.PlanTier = PlanBasic },
		func(p *ApplicantProfile) { p.Age = Int(70) },
	}
	reasons := RejectionReasons()

	p := eligibleProfile()
	for i, breakRule := range breakers {
		breakRule(&p)
		expected := reasons[len(reasons)-1-i]
		s.Equal(Rejected(expected), Evaluate(p), "after breaking %d rules", i+1)
	}
}

// =============================================================================
// End-to-end scenarios
// =============================================================================

func (s *RulesSuite) TestScenarios() {
	s.Run("approval", func() {
		s.Equal(Approved(), Evaluate(eligibleProfile()))
	})

	s.Run("rejection cascade from age", func() {
		p := eligibleProfile()
		p.Age = Int(17)
		s.Equal(Rejected(ReasonAgeOutOfRange), Evaluate(p))
	})

	s.Run("essential plan with chronic conditions", func() {
		p := eligibleProfile()
		p.Age = Int(40)
		p.PlanTier = PlanEssential
		p.MonthsActive = Int(12)
		p.HasChronicConditions = true
		s.Equal(Rejected(ReasonHasChronicConditions), Evaluate(p))
	})
}
