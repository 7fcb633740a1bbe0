package report

import (
	"fmt"
	"sort"
	"time"

	"qr-dine/internal/domain"
)

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type Bucket struct {
	Name     string  `json:"name"`
	Earnings float64 `json:"earnings"`
	Orders   int     `json:"orders"`
}

type TopProduct struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

type Earnings struct {
	Daily        []Bucket     `json:"daily"`
	Weekly       []Bucket     `json:"weekly"`
	Monthly      []Bucket     `json:"monthly"`
	TotalRevenue float64      `json:"totalRevenue"`
	TotalOrders  int          `json:"totalOrders"`
	TotalItems   int          `json:"totalItems"`
	TopProducts  []TopProduct `json:"topProducts"`
}

// Build aggregates a restaurant's full order history relative to now.
// All windows are half-open [start, end) intervals anchored at midnight
// in now's location. Every call rescans the whole order set; nothing is
// cached, so the output depends only on the orders and now.
func Build(orders []domain.Order, now time.Time) Earnings {
	return Earnings{
		Daily:        buildDaily(orders, now),
		Weekly:       buildWeekly(orders, now),
		Monthly:      buildMonthly(orders, now),
		TotalRevenue: sumSubtotals(orders),
		TotalOrders:  len(orders),
		TotalItems:   countItems(orders),
		TopProducts:  topProducts(orders, 5),
	}
}

// buildDaily covers the 7 trailing days (today included), keyed by
// weekday name and re-emitted in fixed Sun..Sat order. A weekday with
// no matching window cannot occur over 7 consecutive days, but the
// zero-bucket fallback keeps the shape stable regardless.
func buildDaily(orders []domain.Order, now time.Time) []Bucket {
	byDay := make(map[string]Bucket, 7)
	for i := 6; i >= 0; i-- {
		start := midnight(now.AddDate(0, 0, -i))
		earnings, count := sumWindow(orders, start, start.AddDate(0, 0, 1))
		name := weekdayNames[int(start.Weekday())]
		byDay[name] = Bucket{Name: name, Earnings: earnings, Orders: count}
	}

	daily := make([]Bucket, 0, 7)
	for _, name := range weekdayNames {
		b, ok := byDay[name]
		if !ok {
			b = Bucket{Name: name}
		}
		daily = append(daily, b)
	}
	return daily
}

// buildWeekly covers 4 trailing 7-day windows anchored to the most
// recent Sunday, oldest week first.
func buildWeekly(orders []domain.Order, now time.Time) []Bucket {
	weekly := make([]Bucket, 0, 4)
	for i := 3; i >= 0; i-- {
		start := midnight(now).AddDate(0, 0, -int(now.Weekday())-i*7)
		earnings, count := sumWindow(orders, start, start.AddDate(0, 0, 7))
		weekly = append(weekly, Bucket{
			Name:     fmt.Sprintf("Week %d", 4-i),
			Earnings: earnings,
			Orders:   count,
		})
	}
	return weekly
}

// buildMonthly covers 6 trailing calendar months, oldest first, labeled
// with the 3-letter month abbreviation.
func buildMonthly(orders []domain.Order, now time.Time) []Bucket {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthly := make([]Bucket, 0, 6)
	for i := 5; i >= 0; i-- {
		start := firstOfMonth.AddDate(0, -i, 0)
		earnings, count := sumWindow(orders, start, start.AddDate(0, 1, 0))
		monthly = append(monthly, Bucket{
			Name:     start.Format("Jan"),
			Earnings: earnings,
			Orders:   count,
		})
	}
	return monthly
}

func sumWindow(orders []domain.Order, start, end time.Time) (earnings float64, count int) {
	for _, o := range orders {
		if !o.CreatedAt.Before(start) && o.CreatedAt.Before(end) {
			earnings += o.Subtotal
			count++
		}
	}
	return earnings, count
}

func sumSubtotals(orders []domain.Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.Subtotal
	}
	return total
}

func countItems(orders []domain.Order) int {
	var total int
	for _, o := range orders {
		for _, it := range o.Items {
			total += quantityOrOne(it.Quantity)
		}
	}
	return total
}

// topProducts ranks item names by cumulative quantity sold, descending,
// ties broken by first-encounter order. Returns at most limit entries.
func topProducts(orders []domain.Order, limit int) []TopProduct {
	index := make(map[string]int)
	ranked := []TopProduct{}

	for _, o := range orders {
		for _, it := range o.Items {
			qty := quantityOrOne(it.Quantity)
			i, ok := index[it.Name]
			if !ok {
				i = len(ranked)
				index[it.Name] = i
				ranked = append(ranked, TopProduct{Name: it.Name})
			}
			ranked[i].Sales += qty
			ranked[i].Revenue += it.Price * float64(qty)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Sales > ranked[j].Sales
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Malformed orders may carry a zero quantity; count them as one unit,
// matching how the storefront treats them.
func quantityOrOne(q int) int {
	if q <= 0 {
		return 1
	}
	return q
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
