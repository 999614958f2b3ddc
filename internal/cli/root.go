// Package cli exposes the eligibility check as a cobra command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"benefitcheck/internal/eligibility"
	"benefitcheck/pkg/requestcontext"
)

// Process exit codes.
const (
	ExitApproved = 0
	ExitUsage    = 1
	ExitRejected = 2
)

// errRejected is returned by evaluate after the rejection notice is printed.
var errRejected = errors.New("applicant is not eligible")

// Evaluator is the slice of the eligibility service the CLI depends on.
type Evaluator interface {
	Evaluate(ctx context.Context, profile eligibility.ApplicantProfile) *eligibility.EvaluateResult
}

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

// NewRootCmd builds the benefitcheck command tree.
func NewRootCmd(evaluator Evaluator, logger *slog.Logger) *cobra.Command {
	if logger == nil {
		logger = slog.Default()
	}

	root := &cobra.Command{
		Use:   "benefitcheck",
		Short: "Check eligibility for the health plan extra benefit",
		Long: `benefitcheck evaluates a beneficiary's answers against the extra benefit
policy and prints the same notice the enrollment form shows.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			info := commandContext{
				correlationID: uuid.New(),
				startedAt:     time.Now(),
			}
			ctx = context.WithValue(ctx, commandContextKey{}, info)
			ctx = requestcontext.WithRequestID(ctx, info.correlationID.String())
			ctx = requestcontext.WithTime(ctx, info.startedAt)
			cmd.SetContext(ctx)
			logger.DebugContext(ctx, "command start",
				"command", cmd.CommandPath(),
				"correlation_id", info.correlationID.String(),
			)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
			if !ok {
				return
			}
			logger.DebugContext(cmd.Context(), "command end",
				"command", cmd.CommandPath(),
				"correlation_id", info.correlationID.String(),
				"duration_ms", time.Since(info.startedAt).Milliseconds(),
			)
		},
	}

	root.AddCommand(
		newEvaluateCmd(evaluator),
		newRegionsCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs root with args and maps the outcome to a process exit code.
func Execute(ctx context.Context, root *cobra.Command, args []string) int {
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitApproved
	case errors.Is(err, errRejected):
		return ExitRejected
	default:
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return ExitUsage
	}
}
