package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"qr-dine/internal/domain"
	"qr-dine/internal/service"
)

func TestPlaceOrderInvalidJSON(t *testing.T) {
	h := newTestHandler(&fakeOrderService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{nope"))
	h.PlaceOrder(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPlaceOrderValidationError(t *testing.T) {
	h := newTestHandler(&fakeOrderService{
		placeErr: fmt.Errorf("%w: table number is required", service.ErrInvalid),
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"items":[]}`))
	h.PlaceOrder(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body["message"], "table number") {
		t.Fatalf("expected the validation reason, got %q", body["message"])
	}
}

func TestPlaceOrderCreated(t *testing.T) {
	placed := domain.Order{
		ID:       1,
		Number:   "ORD_20250312_001",
		TableNo:  "7",
		Subtotal: 220,
		Status:   domain.StatusPending,
	}
	h := newTestHandler(&fakeOrderService{placed: placed})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders",
		strings.NewReader(`{"restaurantId":1,"tableno":"7","items":[{"item":"Tea","price":50,"quantity":2}]}`))
	h.PlaceOrder(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var body struct {
		Message  string       `json:"message"`
		Order    domain.Order `json:"order"`
		Subtotal float64      `json:"subtotal"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Message != "Order placed successfully" {
		t.Fatalf("unexpected message %q", body.Message)
	}
	if body.Order.Number != placed.Number || body.Subtotal != 220 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestCompleteOrderInvalidID(t *testing.T) {
	h := newTestHandler(&fakeOrderService{})

	rec := httptest.NewRecorder()
	h.CompleteOrder(rec, requestWithParam(http.MethodPatch, "/api/admin/orders/abc", "orderId", "abc"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
