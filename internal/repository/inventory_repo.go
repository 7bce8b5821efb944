package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
)

type InventoryRepository interface {
	// AdjustStock applies a signed stock change and appends the audit row in
	// one database transaction. Concurrent adjustments to the same product
	// serialize on a row lock, so no delta is ever lost.
	AdjustStock(productID uuid.UUID, changeAmount int, reason string, userID *uuid.UUID) (*model.InventoryLog, error)
	FindLogs(p Pagination) ([]model.InventoryLog, int64, error)
	FindLogByID(id uuid.UUID) (*model.InventoryLog, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) AdjustStock(productID uuid.UUID, changeAmount int, reason string, userID *uuid.UUID) (*model.InventoryLog, error) {
	var log *model.InventoryLog

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		// Row lock; soft-deleted products are excluded by the default scope.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("product not found")
			}
			return translate(err, "product")
		}

		newStock := product.StockQuantity + changeAmount
		if newStock < 0 {
			return apperror.InsufficientStock("adjustment would drive stock below zero")
		}

		if err := tx.Model(&model.Product{}).
			Where("id = ?", product.ID).
			Update("stock_quantity", newStock).Error; err != nil {
			return translate(err, "product")
		}

		entry := &model.InventoryLog{
			ProductID:    product.ID,
			ChangeAmount: changeAmount,
			Reason:       reason,
			UserID:       userID,
		}
		if err := tx.Create(entry).Error; err != nil {
			return translate(err, "inventory log")
		}

		product.StockQuantity = newStock
		entry.Product = &product
		log = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}

func (r *inventoryRepo) FindLogs(p Pagination) ([]model.InventoryLog, int64, error) {
	p.Normalize()

	var total int64
	if err := r.db.Model(&model.InventoryLog{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "inventory log")
	}

	var logs []model.InventoryLog
	err := r.db.Preload("Product").Preload("User").
		Order("created_at DESC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&logs).Error
	return logs, total, translate(err, "inventory log")
}

func (r *inventoryRepo) FindLogByID(id uuid.UUID) (*model.InventoryLog, error) {
	var log model.InventoryLog
	err := r.db.Preload("Product").Preload("User").First(&log, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "inventory log")
	}
	return &log, nil
}
