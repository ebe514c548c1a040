package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

// POST /recommend-build
func (h *Handler) RecommendBuild(w http.ResponseWriter, r *http.Request) {
	var req domain.BuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}

	result, err := h.service.RecommendBuild(r.Context(), req)
	if err != nil {
		writeBuildError(w, err, req.Budget, req.Purpose)
		return
	}

	resp := BuildResponse{
		Build: result.Build,
		Metadata: BuildMeta{
			CacheHit:    result.CacheHit,
			GeneratedAt: result.Build.GeneratedAt,
		},
	}

	writeJSON(w, http.StatusOK, resp)
}

// POST /compare-builds
func (h *Handler) CompareBuilds(w http.ResponseWriter, r *http.Request) {
	var req domain.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}
	if len(req.Budgets) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "At least one budget is required")
		return
	}

	comparison, err := h.service.CompareBuilds(r.Context(), req)
	if err != nil {
		writeBuildError(w, err, 0, req.Purpose)
		return
	}

	writeJSON(w, http.StatusOK, comparison)
}

func writeBuildError(w http.ResponseWriter, err error, budget int, purpose domain.Purpose) {
	// Unknown purpose
	if errors.Is(err, domain.ErrUnknownPurpose) {
		writeError(w, http.StatusBadRequest, "invalid_parameter",
			fmt.Sprintf("Unknown purpose %q", purpose))
		return
	}
	// Budget not a positive amount
	if errors.Is(err, domain.ErrInvalidBudget) {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Budget must be a positive amount in BDT")
		return
	}
	// Budget below the floor for the purpose
	if errors.Is(err, domain.ErrInsufficientBudget) {
		writeError(w, http.StatusBadRequest, "insufficient_budget",
			fmt.Sprintf("Budget %d BDT is below the minimum for purpose %q", budget, purpose))
		return
	}
	// Catalog has nothing usable
	if errors.Is(err, domain.ErrInsufficientOptions) {
		writeError(w, http.StatusNotFound, "insufficient_options",
			"No components available to build with, try again after the next catalog refresh")
		return
	}
	// Request timeout
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		writeError(w, http.StatusServiceUnavailable, "request_timeout",
			"Request timed out, please try again")
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
}
