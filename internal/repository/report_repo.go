package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/gems2004/Stocky-sub001/internal/model"
)

// DailySales is one aggregated day of completed sales.
type DailySales struct {
	Day             string `json:"day"`
	TotalSaleAmount int64  `json:"totalSaleAmount"`
}

type ReportRepository interface {
	SalesByDay(start, end time.Time) ([]DailySales, error)
	SalesTotals(start, end time.Time) (revenue int64, orders int64, err error)
	LowStockProducts() ([]model.Product, error)
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db}
}

// SalesByDay returns per-day completed sale sums inside the range. Days with
// no sales are absent here; the service zero-fills them.
func (r *reportRepo) SalesByDay(start, end time.Time) ([]DailySales, error) {
	rows, err := r.db.Model(&model.Transaction{}).
		Select("DATE(created_at) as day, COALESCE(SUM(total_amount), 0) as total").
		Where("status = ? AND created_at BETWEEN ? AND ?", model.TransactionCompleted, start, end).
		Group("DATE(created_at)").
		Order("day ASC").
		Rows()
	if err != nil {
		return nil, translate(err, "report")
	}
	defer rows.Close()

	var results []DailySales
	for rows.Next() {
		var day time.Time
		var total int64
		if err := rows.Scan(&day, &total); err != nil {
			return nil, translate(err, "report")
		}
		results = append(results, DailySales{
			Day:             day.Format("2006-01-02"),
			TotalSaleAmount: total,
		})
	}
	return results, translate(rows.Err(), "report")
}

func (r *reportRepo) SalesTotals(start, end time.Time) (int64, int64, error) {
	var agg struct {
		Revenue int64
		Orders  int64
	}
	err := r.db.Model(&model.Transaction{}).
		Select("COALESCE(SUM(total_amount), 0) as revenue, COUNT(*) as orders").
		Where("status = ? AND created_at BETWEEN ? AND ?", model.TransactionCompleted, start, end).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, translate(err, "report")
	}
	return agg.Revenue, agg.Orders, nil
}

func (r *reportRepo) LowStockProducts() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("stock_quantity <= min_stock_level").
		Order("stock_quantity ASC").
		Find(&products).Error
	return products, translate(err, "product")
}
