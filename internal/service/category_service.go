package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/repository"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/validator"
)

type CategoryService interface {
	Create(req *model.Category) (*model.Category, error)
	GetAll(p repository.Pagination) ([]model.Category, int64, error)
	GetByID(id uuid.UUID) (*model.Category, error)
	Update(id uuid.UUID, req *model.Category) (*model.Category, error)
	Delete(id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(req *model.Category) (*model.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs[0])
	}

	if existing, err := s.repo.FindByName(req.Name); err == nil && existing != nil {
		return nil, apperror.Conflict("a category with this name already exists")
	} else if err != nil && !apperror.IsCode(err, apperror.CodeNotFound) {
		return nil, err
	}

	if err := s.repo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *categoryService) GetAll(p repository.Pagination) ([]model.Category, int64, error) {
	return s.repo.FindAll(p)
}

func (s *categoryService) GetByID(id uuid.UUID) (*model.Category, error) {
	return s.repo.FindByID(id)
}

func (s *categoryService) Update(id uuid.UUID, req *model.Category) (*model.Category, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs[0])
	}

	if other, err := s.repo.FindByName(req.Name); err == nil && other.ID != existing.ID {
		return nil, apperror.Conflict("a category with this name already exists")
	} else if err != nil && !apperror.IsCode(err, apperror.CodeNotFound) {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *categoryService) Delete(id uuid.UUID) error {
	return s.repo.Delete(id)
}
