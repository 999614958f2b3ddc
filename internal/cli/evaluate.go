package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"benefitcheck/internal/eligibility"
	"benefitcheck/internal/eligibility/handler"
)

type evaluateOptions struct {
	input  eligibility.FormInput
	asJSON bool
}

func newEvaluateCmd(evaluator Evaluator) *cobra.Command {
	opts := &evaluateOptions{}

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate an applicant against the extra benefit policy",
		Long: `Evaluate an applicant against the extra benefit policy.

Numbers are read the way the form reads them: anything that is not a
non-negative whole number counts as not meeting the criterion.

Exit status is 0 when approved and 2 when rejected.

Examples:
  benefitcheck evaluate --age 30 --plan Premium --waiting-period-completed \
    --dependents 2 --recent-checkups --region "Minas Gerais"
  benefitcheck evaluate --age 40 --plan Essencial --months-active 6 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvaluate(cmd, evaluator, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.input.Age, "age", "", "applicant age in years")
	f.StringVar(&opts.input.PlanTier, "plan", "", "plan tier: Básico, Essencial or Premium")
	f.StringVar(&opts.input.MonthsActive, "months-active", "", "months on the Essencial plan")
	f.BoolVar(&opts.input.WaitingPeriodCompleted, "waiting-period-completed", false, "waiting period is over")
	f.BoolVar(&opts.input.HasChronicConditions, "chronic-conditions", false, "has registered chronic conditions")
	f.StringVar(&opts.input.DependentsCount, "dependents", "", "number of dependents")
	f.BoolVar(&opts.input.HadRecentCheckups, "recent-checkups", false, "had an approved checkup in the last 6 months")
	f.BoolVar(&opts.input.HasOverdueInvoices, "overdue-invoices", false, "has overdue invoices")
	f.StringVar(&opts.input.Region, "region", "", "state of residence")
	f.BoolVar(&opts.asJSON, "json", false, "print the verdict as JSON")

	return cmd
}

func runEvaluate(cmd *cobra.Command, evaluator Evaluator, opts *evaluateOptions) error {
	result := evaluator.Evaluate(cmd.Context(), opts.input.Profile())

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(handler.FromResult(result)); err != nil {
			return fmt.Errorf("encoding verdict: %w", err)
		}
	} else {
		fmt.Fprintf(out, "%s: %s\n", result.Notice.Title, result.Notice.Message)
	}

	if !result.Verdict.IsApproved() {
		return errRejected
	}
	return nil
}
