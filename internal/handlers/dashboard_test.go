package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"qr-dine/internal/domain"
	"qr-dine/internal/report"
	"qr-dine/internal/service"
)

type fakeOrderService struct {
	earnings    report.Earnings
	earningsErr error
	placed      domain.Order
	placeErr    error
}

func (f *fakeOrderService) PlaceOrder(context.Context, domain.PlaceOrderRequest) (domain.Order, error) {
	return f.placed, f.placeErr
}

func (f *fakeOrderService) CompleteOrder(context.Context, int64) (domain.Order, error) {
	return f.placed, f.placeErr
}

func (f *fakeOrderService) ListOrders(context.Context, int64) ([]domain.Order, error) {
	return nil, nil
}

func (f *fakeOrderService) Earnings(context.Context, int64) (report.Earnings, error) {
	return f.earnings, f.earningsErr
}

func newTestHandler(orders service.OrderServiceInterface) *Handler {
	return New(&service.Service{Orders: orders}, zap.NewNop())
}

func requestWithParam(method, target, key, value string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	if key != "" {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestEarningDetailsMissingRestaurantID(t *testing.T) {
	h := newTestHandler(&fakeOrderService{})

	rec := httptest.NewRecorder()
	h.EarningDetails(rec, requestWithParam(http.MethodGet, "/api/admin/dashboard/earnings", "", ""))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["message"] != "Restaurant ID is required" {
		t.Fatalf("unexpected message %q", body["message"])
	}
}

func TestEarningDetailsOK(t *testing.T) {
	want := report.Build(nil, time.Now())
	h := newTestHandler(&fakeOrderService{earnings: want})

	rec := httptest.NewRecorder()
	h.EarningDetails(rec, requestWithParam(http.MethodGet, "/api/admin/dashboard/earnings/5", "restaurantId", "5"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got report.Earnings
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Daily) != 7 || len(got.Weekly) != 4 || len(got.Monthly) != 6 {
		t.Fatalf("unexpected bucket shape: %d/%d/%d", len(got.Daily), len(got.Weekly), len(got.Monthly))
	}
}

func TestEarningDetailsStoreFailure(t *testing.T) {
	h := newTestHandler(&fakeOrderService{earningsErr: errors.New("db down")})

	rec := httptest.NewRecorder()
	h.EarningDetails(rec, requestWithParam(http.MethodGet, "/api/admin/dashboard/earnings/5", "restaurantId", "5"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	// No internal detail may leak to the caller.
	if body["message"] != "Internal server error" {
		t.Fatalf("unexpected message %q", body["message"])
	}
}
