package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/repository"
	"github.com/gems2004/Stocky-sub001/pkg/validator"
)

type CustomerService interface {
	Create(req *model.Customer) (*model.Customer, error)
	GetAll(p repository.Pagination) ([]model.Customer, int64, error)
	GetByID(id uuid.UUID) (*model.Customer, error)
	Update(id uuid.UUID, req *model.Customer) (*model.Customer, error)
	Delete(id uuid.UUID) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(req *model.Customer) (*model.Customer, error) {
	req.Name = strings.TrimSpace(req.Name)
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs[0])
	}

	if err := s.repo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *customerService) GetAll(p repository.Pagination) ([]model.Customer, int64, error) {
	return s.repo.FindAll(p)
}

func (s *customerService) GetByID(id uuid.UUID) (*model.Customer, error) {
	return s.repo.FindByID(id)
}

func (s *customerService) Update(id uuid.UUID, req *model.Customer) (*model.Customer, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs[0])
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *customerService) Delete(id uuid.UUID) error {
	return s.repo.Delete(id)
}
