package view

import (
	"time"

	"github.com/ttran/storeadmin/internal/core/domain"
)

type Stats struct {
	TotalProducts  int
	ActiveProducts int
	TotalOrders    int
	PendingOrders  int
	Revenue        float64
}

// DailyCount is one point of the daily order-count series.
type DailyCount struct {
	Date  time.Time
	Count int
}

type StatusCount struct {
	Status domain.OrderStatus
	Count  int
}

type Dashboard struct {
	Stats           Stats
	DailyOrders     []DailyCount
	StatusBreakdown []StatusCount
}

const dailySeriesDays = 14

// BuildDashboard aggregates store state into the dashboard view-model.
// Revenue sums completed orders only, rounded to two decimals. The daily
// series is a fixed 14-point window ending on the day of now, zero-filled
// for days without orders. The status breakdown omits zero-count entries.
func BuildDashboard(products []domain.Product, orders []domain.Order, now time.Time) Dashboard {
	var d Dashboard

	d.Stats.TotalProducts = len(products)
	for _, p := range products {
		if p.Status == domain.ProductStatusActive {
			d.Stats.ActiveProducts++
		}
	}

	var revenue float64
	byStatus := map[domain.OrderStatus]int{}
	byDay := map[string]int{}
	for _, o := range orders {
		byStatus[o.Status]++
		byDay[o.CreatedAt.Format("2006-01-02")]++
		if o.Status == domain.OrderStatusCompleted {
			revenue += o.Total
		}
	}
	d.Stats.TotalOrders = len(orders)
	d.Stats.PendingOrders = byStatus[domain.OrderStatusPending]
	d.Stats.Revenue = domain.Round2(revenue)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	d.DailyOrders = make([]DailyCount, 0, dailySeriesDays)
	for i := dailySeriesDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		d.DailyOrders = append(d.DailyOrders, DailyCount{
			Date:  day,
			Count: byDay[day.Format("2006-01-02")],
		})
	}

	for _, status := range []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusCompleted,
		domain.OrderStatusCancelled,
	} {
		if n := byStatus[status]; n > 0 {
			d.StatusBreakdown = append(d.StatusBreakdown, StatusCount{Status: status, Count: n})
		}
	}

	return d
}
