package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/repository"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/validator"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name"`
	Role     string `json:"role" validate:"required,oneof=ADMIN CASHIER"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	FullName *string `json:"full_name"`
	Role     *string `json:"role" validate:"omitempty,oneof=ADMIN CASHIER"`
	IsActive *bool   `json:"is_active"`
}

type UserService interface {
	Create(req *CreateUserRequest) (*model.User, error)
	GetAll(p repository.Pagination) ([]model.User, int64, error)
	GetByID(id uuid.UUID) (*model.User, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*model.User, error)
	Delete(id uuid.UUID) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(req *CreateUserRequest) (*model.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs[0])
	}

	if _, err := s.repo.FindByUsername(req.Username); err == nil {
		return nil, apperror.Conflict("username already taken")
	} else if !apperror.IsCode(err, apperror.CodeNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindByEmail(req.Email); err == nil {
		return nil, apperror.Conflict("email already registered")
	} else if !apperror.IsCode(err, apperror.CodeNotFound) {
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, apperror.Internal("failed to hash password").WithDetails(err.Error())
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAll(p repository.Pagination) ([]model.User, int64, error) {
	return s.repo.FindAll(p)
}

func (s *userService) GetByID(id uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(id)
}

func (s *userService) Update(id uuid.UUID, req *UpdateUserRequest) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs[0])
	}

	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if other, err := s.repo.FindByEmail(email); err == nil && other.ID != user.ID {
			return nil, apperror.Conflict("email already registered")
		} else if err != nil && !apperror.IsCode(err, apperror.CodeNotFound) {
			return nil, err
		}
		user.Email = email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, apperror.Internal("failed to hash password").WithDetails(err.Error())
		}
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(id uuid.UUID) error {
	return s.repo.Delete(id)
}
