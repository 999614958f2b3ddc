package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"benefitcheck/internal/eligibility"
	"benefitcheck/internal/eligibility/handler/mocks"
	"benefitcheck/pkg/platform/httputil"
	"benefitcheck/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service
type EligibilityHandlerSuite struct {
	suite.Suite
	router      http.Handler
	mockService *mocks.MockService
}

func TestEligibilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(EligibilityHandlerSuite))
}

func (s *EligibilityHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	s.mockService = mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	New(s.mockService, logger).Register(r)
	s.router = r
}

var evaluatedAt = time.Date(2025, 7, 14, 15, 0, 0, 0, time.UTC)

func (s *EligibilityHandlerSuite) TestHandleEvaluateApproved() {
	expectedProfile := eligibility.ApplicantProfile{
		Age:                    eligibility.Int(30),
		PlanTier:               eligibility.PlanPremium,
		MonthsActive:           eligibility.Invalid(),
		WaitingPeriodCompleted: true,
		DependentsCount:        eligibility.Int(2),
		HadRecentCheckups:      true,
		Region:                 "Minas Gerais",
	}
	s.mockService.EXPECT().
		Evaluate(gomock.Any(), expectedProfile).
		Return(eligibility.BuildResult(eligibility.Approved(), evaluatedAt))

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/eligibility/evaluate", map[string]any{
		"age":                      30,
		"plan_tier":                "Premium",
		"waiting_period_completed": true,
		"has_chronic_conditions":   false,
		"dependents_count":         "2",
		"had_recent_checkups":      true,
		"has_overdue_invoices":     false,
		"region":                   "Minas Gerais",
	})
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatusOK(s.T(), rr)
	resp := testutil.UnmarshalResponse[EvaluateResponse](s.T(), rr)
	s.Equal("approved", resp.Status)
	s.Empty(resp.Reason)
	s.Equal("Parabéns!", resp.Title)
	s.Equal("Você está qualificado para o benefício extra do seu Plano de Saúde!", resp.Message)
	s.True(resp.EvaluatedAt.Equal(evaluatedAt))
}

func (s *EligibilityHandlerSuite) TestHandleEvaluateRejectedIsOK() {
	s.mockService.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		Return(eligibility.BuildResult(eligibility.Rejected(eligibility.ReasonAgeOutOfRange), evaluatedAt))

	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/eligibility/evaluate", `{"age":"dezessete"}`)
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONContains(s.T(), rr, "status", "rejected")
}

func (s *EligibilityHandlerSuite) TestHandleEvaluatePassesUnreadableAnswersThrough() {
	var got eligibility.ApplicantProfile
	s.mockService.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p eligibility.ApplicantProfile) *eligibility.EvaluateResult {
			got = p
			return eligibility.BuildResult(eligibility.Evaluate(p), evaluatedAt)
		})

	body := `{"age":" 40 ","plan_tier":"Essencial","months_active":11.5,"dependents_count":null,"region":" São Paulo"}`
	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/eligibility/evaluate", body)
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatusOK(s.T(), rr)
	s.Equal(eligibility.Int(40), got.Age)
	s.Equal(eligibility.PlanEssential, got.PlanTier)
	s.False(got.MonthsActive.Valid)
	s.False(got.DependentsCount.Valid)
	s.Equal(" São Paulo", got.Region)
	testutil.AssertJSONContains(s.T(), rr, "reason", "plan_not_eligible")
}

func (s *EligibilityHandlerSuite) TestHandleEvaluateBadRequests() {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"malformed json", `{"age":`, "bad_request"},
		{"wrong type for numeric field", `{"age":true}`, "bad_request"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/eligibility/evaluate", tt.body)
			rr := testutil.DoRequest(s.router, req)
			testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, tt.code)
		})
	}
}

func (s *EligibilityHandlerSuite) TestHandleEvaluateLongAnswersStillGetAVerdict() {
	s.mockService.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p eligibility.ApplicantProfile) *eligibility.EvaluateResult {
			return eligibility.BuildResult(eligibility.Evaluate(p), evaluatedAt)
		}).
		Times(2)

	s.Run("leading zeros keep the age readable", func() {
		body := `{"age":"` + strings.Repeat("0", 130) + `30","plan_tier":"Premium","waiting_period_completed":true,` +
			`"dependents_count":"1","had_recent_checkups":true,"region":"Paraná"}`
		rr := testutil.DoRequest(s.router, testutil.NewRequestWithBody(s.T(), http.MethodPost, "/eligibility/evaluate", body))

		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertJSONContains(s.T(), rr, "status", "approved")
	})

	s.Run("a long region is simply not covered", func() {
		body := `{"age":"30","plan_tier":"Premium","waiting_period_completed":true,` +
			`"dependents_count":"1","had_recent_checkups":true,"region":"` + strings.Repeat("x", 200) + `"}`
		rr := testutil.DoRequest(s.router, testutil.NewRequestWithBody(s.T(), http.MethodPost, "/eligibility/evaluate", body))

		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertJSONContains(s.T(), rr, "reason", "region_not_covered")
	})
}

func (s *EligibilityHandlerSuite) TestHandleEvaluateOversizedBody() {
	body := `{"region":"` + strings.Repeat("x", httputil.MaxBodyBytes) + `"}`
	rr := testutil.DoRequest(s.router, testutil.NewRequestWithBody(s.T(), http.MethodPost, "/eligibility/evaluate", body))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	testutil.AssertJSONContains(s.T(), rr, "error_description", "request body too large")
}

func (s *EligibilityHandlerSuite) TestHandleEvaluateSkipsExpiredRequests() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/eligibility/evaluate", `{"age":"30"}`).WithContext(ctx)
	rr := testutil.DoRequest(s.router, req)

	// No Evaluate expectation: the mock fails the test if the service is called.
	s.Empty(rr.Body.String())
}

func (s *EligibilityHandlerSuite) TestHandleOptions() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/eligibility/options"))

	testutil.AssertStatusOK(s.T(), rr)
	resp := testutil.UnmarshalResponse[OptionsResponse](s.T(), rr)
	s.Equal([]string{"São Paulo", "Minas Gerais", "Paraná"}, resp.CoverageRegions)
	s.Len(resp.PlanTiers, 3)
	s.Equal("Outros", resp.Regions[len(resp.Regions)-1].Value)
}

func TestFormValueUnmarshal(t *testing.T) {
	tests := []struct {
		raw      string
		expected FormValue
	}{
		{`"30"`, "30"},
		{`30`, "30"},
		{`30.5`, "30.5"},
		{`null`, ""},
		{`""`, ""},
		{`"abc"`, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var v FormValue
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &v))
			assert.Equal(t, tt.expected, v)
		})
	}

	var v FormValue
	assert.Error(t, json.Unmarshal([]byte(`{}`), &v))
}
