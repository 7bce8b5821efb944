package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/repository"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/validator"
)

type SupplierService interface {
	Create(req *model.Supplier) (*model.Supplier, error)
	GetAll(p repository.Pagination) ([]model.Supplier, int64, error)
	GetByID(id uuid.UUID) (*model.Supplier, error)
	Update(id uuid.UUID, req *model.Supplier) (*model.Supplier, error)
	Delete(id uuid.UUID) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(req *model.Supplier) (*model.Supplier, error) {
	req.Name = strings.TrimSpace(req.Name)
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs[0])
	}

	if existing, err := s.repo.FindByName(req.Name); err == nil && existing != nil {
		return nil, apperror.Conflict("a supplier with this name already exists")
	} else if err != nil && !apperror.IsCode(err, apperror.CodeNotFound) {
		return nil, err
	}

	if err := s.repo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *supplierService) GetAll(p repository.Pagination) ([]model.Supplier, int64, error) {
	return s.repo.FindAll(p)
}

func (s *supplierService) GetByID(id uuid.UUID) (*model.Supplier, error) {
	return s.repo.FindByID(id)
}

func (s *supplierService) Update(id uuid.UUID, req *model.Supplier) (*model.Supplier, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs[0])
	}

	if other, err := s.repo.FindByName(req.Name); err == nil && other.ID != existing.ID {
		return nil, apperror.Conflict("a supplier with this name already exists")
	} else if err != nil && !apperror.IsCode(err, apperror.CodeNotFound) {
		return nil, err
	}

	existing.Name = req.Name
	existing.ContactPerson = req.ContactPerson
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *supplierService) Delete(id uuid.UUID) error {
	return s.repo.Delete(id)
}
