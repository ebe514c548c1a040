package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZmnRobin/pc-builder/internal/domain"
	"github.com/ZmnRobin/pc-builder/internal/handler"
	"github.com/ZmnRobin/pc-builder/internal/repository"
	"github.com/ZmnRobin/pc-builder/internal/router"
	"github.com/ZmnRobin/pc-builder/internal/scraper"
	"github.com/ZmnRobin/pc-builder/internal/service"
)

type fakeService struct {
	recommendErr error
	compareErr   error
	build        *domain.Build
	comparison   *domain.Comparison
	components   []domain.Component
	health       service.Health
	lastFilter   repository.ComponentFilter
	scrapeCalls  int
}

func (f *fakeService) RecommendBuild(_ context.Context, req domain.BuildRequest) (*service.RecommendResult, error) {
	if f.recommendErr != nil {
		return nil, f.recommendErr
	}
	return &service.RecommendResult{Build: f.build, CacheHit: true}, nil
}

func (f *fakeService) CompareBuilds(_ context.Context, req domain.CompareRequest) (*domain.Comparison, error) {
	if f.compareErr != nil {
		return nil, f.compareErr
	}
	return f.comparison, nil
}

func (f *fakeService) ListComponents(_ context.Context, filter repository.ComponentFilter) ([]domain.Component, error) {
	f.lastFilter = filter
	return f.components, nil
}

func (f *fakeService) ScrapeAndRefresh(context.Context) (scraper.Stats, error) {
	f.scrapeCalls++
	return scraper.Stats{}, nil
}

func (f *fakeService) MarketInsights(context.Context) (*service.MarketInsights, error) {
	return &service.MarketInsights{TotalComponents: 42}, nil
}

func (f *fakeService) Templates() []service.BuildTemplate {
	return []service.BuildTemplate{{Name: "Budget Gaming PC", Purpose: domain.PurposeGamingBudget}}
}

func (f *fakeService) Health(context.Context) service.Health {
	return f.health
}

func testBuild() *domain.Build {
	return &domain.Build{
		Purpose:       domain.PurposeGamingMid,
		Budget:        80000,
		TotalPrice:    78000,
		FitScore:      71.5,
		Compatibility: domain.CompatibilityValid,
		Components: map[domain.Category]domain.Component{
			domain.CategoryCPU: {Name: "AMD Ryzen 5 5600", Category: domain.CategoryCPU, PriceBDT: 15000},
		},
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func serve(t *testing.T, svc handler.Service, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := router.Setup(handler.NewHandler(svc))
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRecommendBuild_OK(t *testing.T) {
	svc := &fakeService{build: testBuild()}
	rec := serve(t, svc, http.MethodPost, "/recommend-build",
		`{"budget": 80000, "purpose": "gaming_mid"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp struct {
		Build    *domain.Build `json:"build"`
		Metadata struct {
			CacheHit bool `json:"cache_hit"`
		} `json:"metadata"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 80000, resp.Build.Budget)
	assert.InDelta(t, 71.5, resp.Build.FitScore, 1e-9)
	assert.True(t, resp.Metadata.CacheHit)
}

func TestRecommendBuild_ErrorMapping(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{domain.ErrUnknownPurpose, http.StatusBadRequest, "invalid_parameter"},
		{domain.ErrInvalidBudget, http.StatusBadRequest, "invalid_parameter"},
		{domain.ErrInsufficientBudget, http.StatusBadRequest, "insufficient_budget"},
		{domain.ErrInsufficientOptions, http.StatusNotFound, "insufficient_options"},
		{context.DeadlineExceeded, http.StatusServiceUnavailable, "request_timeout"},
	}
	for _, tc := range cases {
		svc := &fakeService{recommendErr: tc.err}
		rec := serve(t, svc, http.MethodPost, "/recommend-build",
			`{"budget": 80000, "purpose": "gaming_mid"}`)

		assert.Equal(t, tc.wantStatus, rec.Code, "%v", tc.err)

		var resp handler.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, tc.wantCode, resp.Error, "%v", tc.err)
		assert.NotEmpty(t, resp.Message)
	}
}

func TestRecommendBuild_BadBody(t *testing.T) {
	svc := &fakeService{build: testBuild()}
	rec := serve(t, svc, http.MethodPost, "/recommend-build", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompareBuilds_OK(t *testing.T) {
	svc := &fakeService{comparison: &domain.Comparison{
		Purpose: domain.PurposeGamingMid,
		Builds:  []*domain.Build{testBuild()},
	}}
	rec := serve(t, svc, http.MethodPost, "/compare-builds",
		`{"budgets": [60000, 80000], "purpose": "gaming_mid"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Comparison
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Builds, 1)
}

func TestCompareBuilds_EmptyBudgets(t *testing.T) {
	svc := &fakeService{}
	rec := serve(t, svc, http.MethodPost, "/compare-builds", `{"budgets": [], "purpose": "gaming_mid"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetComponents_FilterParsing(t *testing.T) {
	svc := &fakeService{components: []domain.Component{{Name: "AMD Ryzen 5 5600"}}}
	rec := serve(t, svc, http.MethodGet, "/components?category=CPU&max_price=20000&limit=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.CategoryCPU, svc.lastFilter.Category)
	assert.Equal(t, 20000, svc.lastFilter.MaxPrice)
	assert.Equal(t, 10, svc.lastFilter.Limit)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
}

func TestGetComponents_RejectsBadParams(t *testing.T) {
	svc := &fakeService{}

	rec := serve(t, svc, http.MethodGet, "/components?category=flux-capacitor", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, svc, http.MethodGet, "/components?max_price=-5", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, svc, http.MethodGet, "/components?limit=9999", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScrapeNow_Accepted(t *testing.T) {
	svc := &fakeService{}
	rec := serve(t, svc, http.MethodPost, "/scrape-now", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestGetTemplates(t *testing.T) {
	svc := &fakeService{}
	rec := serve(t, svc, http.MethodGet, "/build-templates", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Templates []service.BuildTemplate `json:"templates"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Templates, 1)
	assert.Equal(t, "Budget Gaming PC", resp.Templates[0].Name)
}

func TestGetMarketInsights(t *testing.T) {
	svc := &fakeService{}
	rec := serve(t, svc, http.MethodGet, "/market-insights", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp service.MarketInsights
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 42, resp.TotalComponents)
}

func TestGetHealth_DegradedIs503(t *testing.T) {
	svc := &fakeService{health: service.Health{Status: "healthy"}}
	rec := serve(t, svc, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	svc = &fakeService{health: service.Health{Status: "unhealthy", Database: "unreachable"}}
	rec = serve(t, svc, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
