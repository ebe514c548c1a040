package handler

import (
	"net/http"
	"strconv"

	"github.com/ZmnRobin/pc-builder/internal/domain"
	"github.com/ZmnRobin/pc-builder/internal/repository"
)

// GET /components
func (h *Handler) GetComponents(w http.ResponseWriter, r *http.Request) {
	var filter repository.ComponentFilter

	// Parse and validate category
	if categoryStr := r.URL.Query().Get("category"); categoryStr != "" {
		category := domain.Category(categoryStr)
		if !knownCategory(category) {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid category parameter")
			return
		}
		filter.Category = category
	}

	// Parse and validate max_price
	if maxPriceStr := r.URL.Query().Get("max_price"); maxPriceStr != "" {
		parsed, err := strconv.Atoi(maxPriceStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid max_price parameter")
			return
		}
		filter.MaxPrice = parsed
	}

	// Parse and validate limit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 200 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
			return
		}
		filter.Limit = parsed
	}

	components, err := h.service.ListComponents(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, ComponentsResponse{
		Components: components,
		Count:      len(components),
	})
}

func knownCategory(c domain.Category) bool {
	for _, known := range domain.AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}
