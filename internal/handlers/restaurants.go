package handlers

import (
	"encoding/json"
	"net/http"

	"qr-dine/internal/domain"
	"qr-dine/internal/middleware"
)

func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := readPathInt64(r, "restaurantId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Restaurant ID is required")
		return
	}

	detail, err := h.Service.Restaurants.GetRestaurant(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "Detail not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "detail": detail})
}

func (h *Handler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	detail, err := h.Service.Restaurants.CreateRestaurant(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "Detail not found")
		return
	}
	writeJSON(w, http.StatusCreated, detail)
}

func (h *Handler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	ac, ok := middleware.GetAuthContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	id, err := readPathInt64(r, "restaurantId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Restaurant ID is required")
		return
	}
	// Admins can only edit their own restaurant.
	if id != ac.RestaurantID {
		writeMessage(w, http.StatusForbidden, "Not your restaurant")
		return
	}

	var req domain.UpdateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	detail, err := h.Service.Restaurants.UpdateRestaurant(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, err, "Detail not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "detail": detail})
}
