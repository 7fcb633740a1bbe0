package handlers

import (
	"encoding/json"
	"net/http"

	"qr-dine/internal/domain"
	"qr-dine/internal/middleware"
)

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	order, err := h.Service.Orders.PlaceOrder(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "Order not found")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Order placed successfully",
		"order":    order,
		"subtotal": order.Subtotal,
	})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ac, ok := middleware.GetAuthContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	orders, err := h.Service.Orders.ListOrders(r.Context(), ac.RestaurantID)
	if err != nil {
		h.respondServiceError(w, err, "Order not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "All orders retrieved successfully",
		"orders":  orders,
	})
}

func (h *Handler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := readPathInt64(r, "orderId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.Service.Orders.CompleteOrder(r.Context(), orderID)
	if err != nil {
		h.respondServiceError(w, err, "Order not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Order status updated to completed",
		"order":   order,
	})
}
