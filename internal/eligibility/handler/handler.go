package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"benefitcheck/internal/eligibility"
	"benefitcheck/pkg/platform/httputil"
	"benefitcheck/pkg/requestcontext"
)

// Service defines the interface for eligibility operations.
type Service interface {
	Evaluate(ctx context.Context, profile eligibility.ApplicantProfile) *eligibility.EvaluateResult
}

// Handler wires eligibility endpoints to the eligibility service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an eligibility handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts eligibility endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/eligibility/evaluate", h.HandleEvaluate)
	r.Get("/eligibility/options", h.HandleOptions)
}

// HandleEvaluate handles POST /eligibility/evaluate requests. Rejections are
// business outcomes and are returned with 200.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	// Decode and validate request
	req, ok := httputil.DecodeAndPrepare[EvaluateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	// The route timeout answers 504 once the deadline has passed.
	if err := ctx.Err(); err != nil {
		h.logger.WarnContext(ctx, "request abandoned before evaluation",
			"request_id", requestID,
			"error", err,
		)
		return
	}

	result := h.service.Evaluate(ctx, req.ParsedProfile())

	h.logger.DebugContext(ctx, "eligibility request served",
		"request_id", requestID,
		"status", result.Verdict.Status,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleOptions handles GET /eligibility/options requests.
func (h *Handler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, NewOptionsResponse())
}
