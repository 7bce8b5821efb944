package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/repository"
)

func fixedNow() time.Time {
	// Thursday 2026-03-19
	return time.Date(2026, 3, 19, 15, 0, 0, 0, time.UTC)
}

func newTestReportService(repo repository.ReportRepository) *reportService {
	return &reportService{repo: repo, now: fixedNow}
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestWeeklySales_ZeroFillsEmptyRange(t *testing.T) {
	svc := newTestReportService(&mockReportRepo{})

	sales, err := svc.WeeklySales(datePtr(2026, 3, 2), datePtr(2026, 3, 8))

	require.NoError(t, err)
	require.Len(t, sales, 7)
	for i, day := range sales {
		assert.Zero(t, day.TotalSaleAmount)
		expected := time.Date(2026, 3, 2+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		assert.Equal(t, expected, day.Day)
	}
}

func TestWeeklySales_FillsGapsBetweenSaleDays(t *testing.T) {
	svc := newTestReportService(&mockReportRepo{
		salesByDay: []repository.DailySales{
			{Day: "2026-03-02", TotalSaleAmount: 12000},
			{Day: "2026-03-05", TotalSaleAmount: 4500},
		},
	})

	sales, err := svc.WeeklySales(datePtr(2026, 3, 2), datePtr(2026, 3, 8))

	require.NoError(t, err)
	require.Len(t, sales, 7)
	assert.EqualValues(t, 12000, sales[0].TotalSaleAmount)
	assert.EqualValues(t, 0, sales[1].TotalSaleAmount)
	assert.EqualValues(t, 4500, sales[3].TotalSaleAmount)
	assert.EqualValues(t, 0, sales[6].TotalSaleAmount)
}

func TestWeeklySales_DefaultRangeStartsMonday(t *testing.T) {
	svc := newTestReportService(&mockReportRepo{})

	sales, err := svc.WeeklySales(nil, nil)

	require.NoError(t, err)
	// Monday 2026-03-16 through Thursday 2026-03-19.
	require.Len(t, sales, 4)
	assert.Equal(t, "2026-03-16", sales[0].Day)
	assert.Equal(t, "2026-03-19", sales[3].Day)
}

func TestDashboardStats_AvgIsZeroWithoutOrders(t *testing.T) {
	svc := newTestReportService(&mockReportRepo{revenue: 0, orders: 0})

	stats, err := svc.DashboardStats(nil, nil)

	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.TotalRevenue)
	assert.EqualValues(t, 0, stats.TotalOrders)
	assert.EqualValues(t, 0, stats.AvgOrderValue)
}

func TestDashboardStats_ComputesAverage(t *testing.T) {
	svc := newTestReportService(&mockReportRepo{revenue: 30000, orders: 4})

	stats, err := svc.DashboardStats(nil, nil)

	require.NoError(t, err)
	assert.EqualValues(t, 30000, stats.TotalRevenue)
	assert.EqualValues(t, 4, stats.TotalOrders)
	assert.InDelta(t, 7500.0, stats.AvgOrderValue, 0.001)
}

func TestLowStockProducts_Passthrough(t *testing.T) {
	products := []model.Product{
		{Name: "A", StockQuantity: 0, MinStockLevel: 5},
		{Name: "B", StockQuantity: 2, MinStockLevel: 5},
		{Name: "C", StockQuantity: 5, MinStockLevel: 5},
	}
	svc := newTestReportService(&mockReportRepo{lowStock: products})

	got, err := svc.LowStockProducts()

	require.NoError(t, err)
	require.Len(t, got, 3)
	// Repository orders ascending by stock; the service preserves it.
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].StockQuantity, got[i-1].StockQuantity)
	}
	for _, p := range got {
		assert.LessOrEqual(t, p.StockQuantity, p.MinStockLevel)
	}
}
