package handlers

import (
	"encoding/json"
	"net/http"

	"qr-dine/internal/domain"
	"qr-dine/internal/middleware"
)

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := readPathInt64(r, "restaurantId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Restaurant ID is required")
		return
	}

	items, err := h.Service.Items.ListItems(r.Context(), restaurantID)
	if err != nil {
		h.respondServiceError(w, err, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := readPathInt64(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	item, err := h.Service.Items.GetItem(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	ac, ok := middleware.GetAuthContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	var req domain.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	// Items always land in the authenticated restaurant's menu.
	req.RestaurantID = ac.RestaurantID

	item, err := h.Service.Items.AddItem(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "Item not found")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := readPathInt64(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	var req domain.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	item, err := h.Service.Items.UpdateItem(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, err, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := readPathInt64(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	if err := h.Service.Items.DeleteItem(r.Context(), id); err != nil {
		h.respondServiceError(w, err, "Item not found")
		return
	}
	writeMessage(w, http.StatusOK, "Item deleted successfully")
}
