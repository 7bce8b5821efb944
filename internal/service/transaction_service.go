package service

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/repository"
	"github.com/gems2004/Stocky-sub001/internal/ws"
	"github.com/gems2004/Stocky-sub001/pkg/logger"
	"github.com/gems2004/Stocky-sub001/pkg/metrics"
	"github.com/gems2004/Stocky-sub001/pkg/validator"
)

type TransactionService interface {
	// Create records a sale: items, header and stock decrements land
	// atomically or not at all.
	Create(req *model.Transaction, cashierID *uuid.UUID) (*model.Transaction, error)
	GetAll(p repository.Pagination) ([]model.Transaction, int64, error)
	GetByID(id uuid.UUID) (*model.Transaction, error)
	Refund(id uuid.UUID) (*model.Transaction, error)
}

type transactionService struct {
	repo  repository.TransactionRepository
	wsHub *ws.Hub
}

func NewTransactionService(repo repository.TransactionRepository, hub *ws.Hub) TransactionService {
	return &transactionService{repo: repo, wsHub: hub}
}

func (s *transactionService) Create(req *model.Transaction, cashierID *uuid.UUID) (*model.Transaction, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs[0])
	}

	req.UserID = cashierID
	if err := s.repo.Create(req); err != nil {
		return nil, err
	}

	metrics.TransactionsTotal.Inc()
	logger.Get().Info("transaction recorded",
		zap.String("transaction_id", req.ID.String()),
		zap.Int("items", len(req.Items)),
		zap.Int64("total_amount", req.TotalAmount),
	)
	s.broadcast("transaction_created", req)
	return req, nil
}

func (s *transactionService) GetAll(p repository.Pagination) ([]model.Transaction, int64, error) {
	return s.repo.FindAll(p)
}

func (s *transactionService) GetByID(id uuid.UUID) (*model.Transaction, error) {
	return s.repo.FindByID(id)
}

func (s *transactionService) Refund(id uuid.UUID) (*model.Transaction, error) {
	refunded, err := s.repo.Refund(id)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("transaction refunded",
		zap.String("transaction_id", refunded.ID.String()),
		zap.Int64("total_amount", refunded.TotalAmount),
	)
	s.broadcast("transaction_refunded", refunded)
	return refunded, nil
}

func (s *transactionService) broadcast(action string, transaction *model.Transaction) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": action,
			"transaction": map[string]interface{}{
				"id":           transaction.ID,
				"total_amount": transaction.TotalAmount,
				"status":       transaction.Status,
			},
		}
		if msg, err := json.Marshal(payload); err == nil {
			s.wsHub.Broadcast <- msg
		}
	}()
}
