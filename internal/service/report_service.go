package service

import (
	"time"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/repository"
)

// DashboardStats is the aggregated overview for the admin dashboard.
type DashboardStats struct {
	TotalRevenue  int64   `json:"totalRevenue"`
	TotalOrders   int64   `json:"totalOrders"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

type ReportService interface {
	// WeeklySales returns one entry per calendar day in the range,
	// zero-filled for days without sales. Nil bounds default to the current
	// week (Monday through today).
	WeeklySales(start, end *time.Time) ([]repository.DailySales, error)
	DashboardStats(start, end *time.Time) (*DashboardStats, error)
	LowStockProducts() ([]model.Product, error)
}

type reportService struct {
	repo repository.ReportRepository
	now  func() time.Time
}

func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo, now: time.Now}
}

func (s *reportService) WeeklySales(start, end *time.Time) ([]repository.DailySales, error) {
	from, to := s.resolveRange(start, end)

	rows, err := s.repo.SalesByDay(from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]int64, len(rows))
	for _, row := range rows {
		byDay[row.Day] = row.TotalSaleAmount
	}

	var out []repository.DailySales
	for d := startOfDay(from); !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		out = append(out, repository.DailySales{
			Day:             key,
			TotalSaleAmount: byDay[key],
		})
	}
	return out, nil
}

func (s *reportService) DashboardStats(start, end *time.Time) (*DashboardStats, error) {
	from, to := s.resolveRange(start, end)

	revenue, orders, err := s.repo.SalesTotals(from, to)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{TotalRevenue: revenue, TotalOrders: orders}
	if orders > 0 {
		stats.AvgOrderValue = float64(revenue) / float64(orders)
	}
	return stats, nil
}

func (s *reportService) LowStockProducts() ([]model.Product, error) {
	return s.repo.LowStockProducts()
}

// resolveRange fills missing bounds: default window is Monday of the current
// week through now; a lone start runs to now, a lone end covers the seven
// days up to it.
func (s *reportService) resolveRange(start, end *time.Time) (time.Time, time.Time) {
	now := s.now()

	switch {
	case start == nil && end == nil:
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday closes the week
		}
		monday := startOfDay(now).AddDate(0, 0, -(weekday - 1))
		return monday, now
	case end == nil:
		return *start, now
	case start == nil:
		return startOfDay(end.AddDate(0, 0, -6)), *end
	default:
		return *start, *end
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
