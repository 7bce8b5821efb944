package service

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/repository"
	"github.com/gems2004/Stocky-sub001/internal/ws"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/logger"
	"github.com/gems2004/Stocky-sub001/pkg/metrics"
)

// AdjustStockRequest is the body of POST /inventory/adjust.
type AdjustStockRequest struct {
	ProductID    uuid.UUID `json:"productId"`
	ChangeAmount int       `json:"changeAmount"`
	Reason       string    `json:"reason"`
}

type InventoryService interface {
	// Adjust applies a signed stock change and returns the audit log row
	// written alongside it. Validation failures reject before any
	// persistence call.
	Adjust(req *AdjustStockRequest, actingUserID *uuid.UUID) (*model.InventoryLog, error)
	GetLogs(p repository.Pagination) ([]model.InventoryLog, int64, error)
	GetLog(id uuid.UUID) (*model.InventoryLog, error)
}

type inventoryService struct {
	repo  repository.InventoryRepository
	wsHub *ws.Hub
}

func NewInventoryService(repo repository.InventoryRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{repo: repo, wsHub: hub}
}

func (s *inventoryService) Adjust(req *AdjustStockRequest, actingUserID *uuid.UUID) (*model.InventoryLog, error) {
	if req.ProductID == uuid.Nil {
		return nil, apperror.Validation("productId is required")
	}
	if req.ChangeAmount == 0 {
		return nil, apperror.Validation("changeAmount must be a non-zero integer")
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, apperror.Validation("reason is required")
	}

	entry, err := s.repo.AdjustStock(req.ProductID, req.ChangeAmount, reason, actingUserID)
	if err != nil {
		return nil, err
	}

	metrics.RecordAdjustment(entry.ChangeAmount)
	logger.Get().Info("stock adjusted",
		zap.String("product_id", entry.ProductID.String()),
		zap.Int("change_amount", entry.ChangeAmount),
		zap.Int("new_stock", entry.Product.StockQuantity),
		zap.String("reason", entry.Reason),
	)

	s.broadcastAdjustment(entry)
	return entry, nil
}

func (s *inventoryService) GetLogs(p repository.Pagination) ([]model.InventoryLog, int64, error) {
	return s.repo.FindLogs(p)
}

func (s *inventoryService) GetLog(id uuid.UUID) (*model.InventoryLog, error) {
	return s.repo.FindLogByID(id)
}

// broadcastAdjustment pushes the stock change to connected admin consoles,
// with a low_stock alert when the product crossed its reorder level.
func (s *inventoryService) broadcastAdjustment(entry *model.InventoryLog) {
	if s.wsHub == nil || entry.Product == nil {
		return
	}

	product := entry.Product
	go func() {
		payload := map[string]interface{}{
			"type": "stock_update",
			"product": map[string]interface{}{
				"id":        product.ID,
				"sku":       product.SKU,
				"name":      product.Name,
				"new_stock": product.StockQuantity,
			},
			"change_amount": entry.ChangeAmount,
			"reason":        entry.Reason,
		}
		if msg, err := json.Marshal(payload); err == nil {
			s.wsHub.Broadcast <- msg
		}

		if product.IsLowStock() {
			alert := map[string]interface{}{
				"type": "low_stock",
				"product": map[string]interface{}{
					"id":              product.ID,
					"sku":             product.SKU,
					"name":            product.Name,
					"stock_quantity":  product.StockQuantity,
					"min_stock_level": product.MinStockLevel,
				},
			}
			if msg, err := json.Marshal(alert); err == nil {
				s.wsHub.Broadcast <- msg
			}
		}
	}()
}
