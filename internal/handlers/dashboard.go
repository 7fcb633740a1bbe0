package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// EarningDetails serves the revenue dashboard: three time series,
// lifetime totals and the top-5 sellers, computed fresh on every call.
func (h *Handler) EarningDetails(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := readPathInt64(r, "restaurantId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Restaurant ID is required")
		return
	}

	earnings, err := h.Service.Orders.Earnings(r.Context(), restaurantID)
	if err != nil {
		h.Logger.Error("earning details failed",
			zap.Int64("restaurant_id", restaurantID),
			zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, earnings)
}
