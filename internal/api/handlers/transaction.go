package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dcamargo/restaurant-finder/internal/api/middleware"
	"github.com/dcamargo/restaurant-finder/internal/service"
)

type TransactionHandler struct {
	transactionService *service.TransactionService
}

func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListAll returns every user's audit entries within a date range.
func (h *TransactionHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	start, end, page, limit, ok := parseRangeQuery(w, r)
	if !ok {
		return
	}

	result, err := h.transactionService.ListByDateRange(r.Context(), start, end, page, limit)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ListMine returns the authenticated user's audit entries within a date range.
func (h *TransactionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, okUser := middleware.GetUserID(r.Context())
	if !okUser {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	start, end, page, limit, ok := parseRangeQuery(w, r)
	if !ok {
		return
	}

	result, err := h.transactionService.ListMineByDateRange(r.Context(), userID, start, end, page, limit)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func parseRangeQuery(w http.ResponseWriter, r *http.Request) (start, end time.Time, page, limit int, ok bool) {
	query := r.URL.Query()

	startStr := query.Get("startDate")
	endStr := query.Get("endDate")
	if startStr == "" || endStr == "" {
		http.Error(w, "Please provide a start and end date", http.StatusBadRequest)
		return
	}

	var err error
	start, err = parseDate(startStr)
	if err != nil {
		http.Error(w, "Invalid startDate", http.StatusBadRequest)
		return
	}
	end, err = parseDate(endStr)
	if err != nil {
		http.Error(w, "Invalid endDate", http.StatusBadRequest)
		return
	}

	page, _ = strconv.Atoi(query.Get("page"))
	limit, _ = strconv.Atoi(query.Get("limit"))

	return start, end, page, limit, true
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
