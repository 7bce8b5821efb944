package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/repository"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/validator"
)

type ProductService interface {
	Create(req *model.Product) (*model.Product, error)
	GetAll(p repository.Pagination) ([]model.Product, int64, error)
	GetByID(id uuid.UUID) (*model.Product, error)
	Search(query string, p repository.Pagination) ([]model.Product, int64, error)
	Update(id uuid.UUID, req *model.Product) (*model.Product, error)
	Delete(id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(req *model.Product) (*model.Product, error) {
	req.SKU = strings.ToUpper(strings.TrimSpace(req.SKU))
	req.Name = strings.TrimSpace(req.Name)

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs[0])
	}

	if err := s.ensureUniqueIdentifiers(req, uuid.Nil); err != nil {
		return nil, err
	}

	if err := s.repo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *productService) GetAll(p repository.Pagination) ([]model.Product, int64, error) {
	return s.repo.FindAll(p)
}

func (s *productService) GetByID(id uuid.UUID) (*model.Product, error) {
	return s.repo.FindByID(id)
}

func (s *productService) Search(query string, p repository.Pagination) ([]model.Product, int64, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, 0, apperror.Validation("search query is required")
	}
	return s.repo.Search(query, p)
}

func (s *productService) Update(id uuid.UUID, req *model.Product) (*model.Product, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	req.SKU = strings.ToUpper(strings.TrimSpace(req.SKU))
	req.Name = strings.TrimSpace(req.Name)
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs[0])
	}

	if err := s.ensureUniqueIdentifiers(req, existing.ID); err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.SKU = req.SKU
	existing.Barcode = req.Barcode
	existing.Price = req.Price
	existing.Cost = req.Cost
	existing.StockQuantity = req.StockQuantity
	existing.MinStockLevel = req.MinStockLevel
	existing.CategoryID = req.CategoryID
	existing.SupplierID = req.SupplierID

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *productService) Delete(id uuid.UUID) error {
	return s.repo.Delete(id)
}

// ensureUniqueIdentifiers rejects sku/barcode collisions with other
// products. The unique constraints back this up for concurrent creates.
func (s *productService) ensureUniqueIdentifiers(req *model.Product, selfID uuid.UUID) error {
	if existing, err := s.repo.FindBySKU(req.SKU); err == nil && existing.ID != selfID {
		return apperror.Conflict("a product with this SKU already exists")
	} else if err != nil && !apperror.IsCode(err, apperror.CodeNotFound) {
		return err
	}

	if req.Barcode != nil && *req.Barcode != "" {
		if existing, err := s.repo.FindByBarcode(*req.Barcode); err == nil && existing.ID != selfID {
			return apperror.Conflict("a product with this barcode already exists")
		} else if err != nil && !apperror.IsCode(err, apperror.CodeNotFound) {
			return err
		}
	}
	return nil
}

func validationError(e *validator.ErrorResponse) error {
	return apperror.Validation(
		fmt.Sprintf("field %q failed validation on %q", e.FailedField, e.Tag))
}
