package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"qr-dine/internal/domain"
)

// Wednesday, fixed so weekday math in the assertions stays readable.
var testNow = time.Date(2025, time.March, 12, 15, 4, 5, 0, time.UTC)

func mkOrder(createdAt time.Time, subtotal float64, items ...domain.OrderItem) domain.Order {
	return domain.Order{
		TableNo:   "4",
		Items:     items,
		Subtotal:  subtotal,
		Status:    domain.StatusPending,
		CreatedAt: createdAt,
	}
}

func TestBuildEmpty(t *testing.T) {
	got := Build(nil, testNow)

	if len(got.Daily) != 7 {
		t.Fatalf("expected 7 daily buckets, got %d", len(got.Daily))
	}
	wantDays := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	for i, b := range got.Daily {
		if b.Name != wantDays[i] {
			t.Fatalf("daily[%d]: expected %s, got %s", i, wantDays[i], b.Name)
		}
		if b.Earnings != 0 || b.Orders != 0 {
			t.Fatalf("daily[%d]: expected zero bucket, got %+v", i, b)
		}
	}

	if len(got.Weekly) != 4 {
		t.Fatalf("expected 4 weekly buckets, got %d", len(got.Weekly))
	}
	for i, b := range got.Weekly {
		want := []string{"Week 1", "Week 2", "Week 3", "Week 4"}[i]
		if b.Name != want {
			t.Fatalf("weekly[%d]: expected %s, got %s", i, want, b.Name)
		}
	}

	if len(got.Monthly) != 6 {
		t.Fatalf("expected 6 monthly buckets, got %d", len(got.Monthly))
	}
	wantMonths := []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
	for i, b := range got.Monthly {
		if b.Name != wantMonths[i] {
			t.Fatalf("monthly[%d]: expected %s, got %s", i, wantMonths[i], b.Name)
		}
	}

	if got.TotalRevenue != 0 || got.TotalOrders != 0 || got.TotalItems != 0 {
		t.Fatalf("expected zero totals, got %+v", got)
	}
	if len(got.TopProducts) != 0 {
		t.Fatalf("expected no top products, got %d", len(got.TopProducts))
	}
}

func TestBuildSingleOrderToday(t *testing.T) {
	orders := []domain.Order{
		mkOrder(testNow.Add(-time.Hour), 100, domain.OrderItem{Name: "Tea", Price: 50, Quantity: 2}),
	}
	got := Build(orders, testNow)

	if got.TotalOrders != 1 || got.TotalRevenue != 100 || got.TotalItems != 2 {
		t.Fatalf("unexpected totals: %+v", got)
	}

	for _, b := range got.Daily {
		if b.Name == "Wed" {
			if b.Earnings != 100 || b.Orders != 1 {
				t.Fatalf("Wed bucket: expected earnings=100 orders=1, got %+v", b)
			}
			continue
		}
		if b.Earnings != 0 || b.Orders != 0 {
			t.Fatalf("%s bucket: expected zero, got %+v", b.Name, b)
		}
	}

	// Today falls in the newest week and the newest month.
	if b := got.Weekly[3]; b.Earnings != 100 || b.Orders != 1 {
		t.Fatalf("Week 4: expected the order, got %+v", b)
	}
	if b := got.Monthly[5]; b.Earnings != 100 || b.Orders != 1 {
		t.Fatalf("Mar: expected the order, got %+v", b)
	}

	want := []TopProduct{{Name: "Tea", Sales: 2, Revenue: 100}}
	if len(got.TopProducts) != 1 || got.TopProducts[0] != want[0] {
		t.Fatalf("expected %+v, got %+v", want, got.TopProducts)
	}
}

func TestBuildDailyHalfOpenBoundaries(t *testing.T) {
	midnightToday := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		mkOrder(midnightToday, 10),                       // first instant of Wednesday
		mkOrder(midnightToday.Add(-time.Nanosecond), 20), // last instant of Tuesday
	}
	got := Build(orders, testNow)

	byName := map[string]Bucket{}
	for _, b := range got.Daily {
		byName[b.Name] = b
	}
	if b := byName["Wed"]; b.Earnings != 10 || b.Orders != 1 {
		t.Fatalf("Wed: expected only the midnight order, got %+v", b)
	}
	if b := byName["Tue"]; b.Earnings != 20 || b.Orders != 1 {
		t.Fatalf("Tue: expected only the pre-midnight order, got %+v", b)
	}
}

func TestBuildWeeklyWindows(t *testing.T) {
	// Most recent Sunday before testNow is 2025-03-09.
	orders := []domain.Order{
		mkOrder(time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC), 40),    // Week 4
		mkOrder(time.Date(2025, time.February, 17, 12, 0, 0, 0, time.UTC), 30), // Week 1
		mkOrder(time.Date(2025, time.February, 15, 12, 0, 0, 0, time.UTC), 99), // before Week 1
	}
	got := Build(orders, testNow)

	if b := got.Weekly[0]; b.Earnings != 30 || b.Orders != 1 {
		t.Fatalf("Week 1: got %+v", b)
	}
	if b := got.Weekly[3]; b.Earnings != 40 || b.Orders != 1 {
		t.Fatalf("Week 4: got %+v", b)
	}

	windowed := 0
	for _, b := range got.Weekly {
		windowed += b.Orders
	}
	if windowed != 2 {
		t.Fatalf("expected 2 orders inside the 4-week window, got %d", windowed)
	}
	// Lifetime totals still see the out-of-window order.
	if got.TotalOrders != 3 || got.TotalRevenue != 169 {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestBuildMonthlyWindows(t *testing.T) {
	orders := []domain.Order{
		mkOrder(time.Date(2025, time.January, 31, 23, 59, 59, 0, time.UTC), 55),
		mkOrder(time.Date(2024, time.September, 30, 12, 0, 0, 0, time.UTC), 77), // older than 6 months
	}
	got := Build(orders, testNow)

	byName := map[string]Bucket{}
	for _, b := range got.Monthly {
		byName[b.Name] = b
	}
	if b := byName["Jan"]; b.Earnings != 55 || b.Orders != 1 {
		t.Fatalf("Jan: got %+v", b)
	}
	for _, name := range []string{"Oct", "Nov", "Dec", "Feb", "Mar"} {
		if b := byName[name]; b.Orders != 0 {
			t.Fatalf("%s: expected empty month, got %+v", name, b)
		}
	}
	if got.TotalRevenue != 132 {
		t.Fatalf("expected lifetime revenue 132, got %v", got.TotalRevenue)
	}
}

func TestTopProducts(t *testing.T) {
	day := testNow.Add(-2 * time.Hour)
	orders := []domain.Order{
		mkOrder(day, 0,
			domain.OrderItem{Name: "A", Price: 10, Quantity: 6},
			domain.OrderItem{Name: "B", Price: 5, Quantity: 7},
		),
		mkOrder(day, 0,
			domain.OrderItem{Name: "A", Price: 10, Quantity: 4},
			domain.OrderItem{Name: "C", Price: 2, Quantity: 3},
		),
	}
	got := Build(orders, testNow).TopProducts

	want := []TopProduct{
		{Name: "A", Sales: 10, Revenue: 100},
		{Name: "B", Sales: 7, Revenue: 35},
		{Name: "C", Sales: 3, Revenue: 6},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("topProducts[%d]: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestTopProductsTiesAndLimit(t *testing.T) {
	day := testNow.Add(-2 * time.Hour)
	items := []domain.OrderItem{
		{Name: "F", Price: 1, Quantity: 2},
		{Name: "E", Price: 1, Quantity: 2}, // same sales as F: encounter order wins
		{Name: "A", Price: 1, Quantity: 9},
		{Name: "B", Price: 1, Quantity: 8},
		{Name: "C", Price: 1, Quantity: 7},
		{Name: "D", Price: 1, Quantity: 6},
	}
	got := Build([]domain.Order{mkOrder(day, 0, items...)}, testNow).TopProducts

	if len(got) != 5 {
		t.Fatalf("expected top list capped at 5, got %d", len(got))
	}
	wantNames := []string{"A", "B", "C", "D", "F"}
	for i, name := range wantNames {
		if got[i].Name != name {
			t.Fatalf("topProducts[%d]: expected %s, got %s", i, name, got[i].Name)
		}
	}
}

func TestZeroQuantityCountsAsOne(t *testing.T) {
	day := testNow.Add(-time.Hour)
	got := Build([]domain.Order{
		mkOrder(day, 0, domain.OrderItem{Name: "Soup", Price: 30, Quantity: 0}),
	}, testNow)

	if got.TotalItems != 1 {
		t.Fatalf("expected totalItems=1, got %d", got.TotalItems)
	}
	if len(got.TopProducts) != 1 || got.TopProducts[0].Sales != 1 || got.TopProducts[0].Revenue != 30 {
		t.Fatalf("unexpected top products: %+v", got.TopProducts)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	orders := []domain.Order{
		mkOrder(testNow.Add(-time.Hour), 100, domain.OrderItem{Name: "Tea", Price: 50, Quantity: 2}),
		mkOrder(testNow.AddDate(0, 0, -3), 250, domain.OrderItem{Name: "Pizza", Price: 250, Quantity: 1}),
	}

	first, err := json.Marshal(Build(orders, testNow))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(Build(orders, testNow))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("expected byte-identical output:\n%s\n%s", first, second)
	}
}
