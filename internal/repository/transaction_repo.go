package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
)

type TransactionRepository interface {
	// Create persists the header, its items and the matching stock
	// decrements as one database transaction.
	Create(transaction *model.Transaction) error
	FindAll(p Pagination) ([]model.Transaction, int64, error)
	FindByID(id uuid.UUID) (*model.Transaction, error)
	// Refund flips a completed transaction to REFUNDED and restores the
	// stock of every line item atomically.
	Refund(id uuid.UUID) (*model.Transaction, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(transaction *model.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var total int64
		for i := range transaction.Items {
			item := &transaction.Items[i]

			var product model.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperror.NotFound("product not found")
				}
				return translate(err, "product")
			}

			if product.StockQuantity < item.Quantity {
				return apperror.InsufficientStock(
					fmt.Sprintf("insufficient stock for %q", product.Name))
			}

			if err := tx.Model(&model.Product{}).
				Where("id = ?", product.ID).
				Update("stock_quantity", product.StockQuantity-item.Quantity).Error; err != nil {
				return translate(err, "product")
			}

			item.UnitPrice = product.Price
			item.Subtotal = product.Price * int64(item.Quantity)
			total += item.Subtotal
		}

		transaction.TotalAmount = total
		transaction.Status = model.TransactionCompleted
		return translate(tx.Create(transaction).Error, "transaction")
	})
}

func (r *transactionRepo) FindAll(p Pagination) ([]model.Transaction, int64, error) {
	p.Normalize()

	var total int64
	if err := r.db.Model(&model.Transaction{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "transaction")
	}

	var transactions []model.Transaction
	err := r.db.Preload("Items").Preload("Items.Product").
		Preload("Customer").Preload("User").
		Order("created_at DESC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&transactions).Error
	return transactions, total, translate(err, "transaction")
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Items").Preload("Items.Product").
		Preload("Customer").Preload("User").
		First(&transaction, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "transaction")
	}
	return &transaction, nil
}

func (r *transactionRepo) Refund(id uuid.UUID) (*model.Transaction, error) {
	var refunded *model.Transaction

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var transaction model.Transaction
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").
			First(&transaction, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("transaction not found")
			}
			return translate(err, "transaction")
		}

		if transaction.Status == model.TransactionRefunded {
			return apperror.Conflict("transaction already refunded")
		}

		for _, item := range transaction.Items {
			// Unscoped so stock on a since-soft-deleted product still
			// reconciles.
			if err := tx.Unscoped().Model(&model.Product{}).
				Where("id = ?", item.ProductID).
				Update("stock_quantity", gorm.Expr("stock_quantity + ?", item.Quantity)).Error; err != nil {
				return translate(err, "product")
			}
		}

		transaction.Status = model.TransactionRefunded
		if err := tx.Model(&transaction).Update("status", model.TransactionRefunded).Error; err != nil {
			return translate(err, "transaction")
		}

		refunded = &transaction
		return nil
	})
	if err != nil {
		return nil, err
	}
	return refunded, nil
}
