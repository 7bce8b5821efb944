package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gems2004/Stocky-sub001/internal/service"
	"github.com/gems2004/Stocky-sub001/pkg/response"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// WeeklySales handles GET /reports/weekly-sales
func (h *ReportHandler) WeeklySales(c *fiber.Ctx) error {
	start, err := parseDateQuery(c, "startDate")
	if err != nil {
		return response.Error(c, err)
	}
	end, err := parseDateQuery(c, "endDate")
	if err != nil {
		return response.Error(c, err)
	}

	sales, err := h.service.WeeklySales(start, end)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, sales)
}

// DashboardStats handles GET /reports/dashboard-stats
func (h *ReportHandler) DashboardStats(c *fiber.Ctx) error {
	start, err := parseDateQuery(c, "startDate")
	if err != nil {
		return response.Error(c, err)
	}
	end, err := parseDateQuery(c, "endDate")
	if err != nil {
		return response.Error(c, err)
	}

	stats, err := h.service.DashboardStats(start, end)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, stats)
}

// LowStock handles GET /reports/low-stock
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.service.LowStockProducts()
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, products)
}
