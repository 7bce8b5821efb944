package service

import (
	"strings"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/repository"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/validator"
)

// SetupRequest is the final submission of the first-run setup wizard.
type SetupRequest struct {
	StoreName string `json:"store_name" validate:"required"`
	Address   string `json:"address"`
	Currency  string `json:"currency"`

	AdminUsername string `json:"admin_username" validate:"required,min=3"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=8"`
	AdminFullName string `json:"admin_full_name"`
}

type SetupStatus struct {
	Completed bool `json:"completed"`
}

type SetupService interface {
	Status() (*SetupStatus, error)
	// Initialize creates the first admin user and store profile atomically.
	// Rejected with Conflict once setup has completed.
	Initialize(req *SetupRequest) (*model.UserResponse, error)
}

type setupService struct {
	settingRepo repository.SettingRepository
	userRepo    repository.UserRepository
}

func NewSetupService(settingRepo repository.SettingRepository, userRepo repository.UserRepository) SetupService {
	return &setupService{settingRepo: settingRepo, userRepo: userRepo}
}

func (s *setupService) Status() (*SetupStatus, error) {
	setting, err := s.settingRepo.Get()
	if err != nil {
		if apperror.IsCode(err, apperror.CodeNotFound) {
			return &SetupStatus{Completed: false}, nil
		}
		return nil, err
	}
	return &SetupStatus{Completed: setting.SetupCompleted}, nil
}

func (s *setupService) Initialize(req *SetupRequest) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs[0])
	}

	if count, err := s.userRepo.Count(); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, apperror.Conflict("setup already completed")
	}

	admin := &model.User{
		Username: strings.TrimSpace(req.AdminUsername),
		Email:    strings.ToLower(strings.TrimSpace(req.AdminEmail)),
		FullName: req.AdminFullName,
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if err := admin.SetPassword(req.AdminPassword); err != nil {
		return nil, apperror.Internal("failed to hash password").WithDetails(err.Error())
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "USD"
	}
	setting := &model.StoreSetting{
		StoreName: strings.TrimSpace(req.StoreName),
		Address:   req.Address,
		Currency:  currency,
	}

	if err := s.settingRepo.Initialize(admin, setting); err != nil {
		return nil, err
	}

	resp := admin.ToResponse()
	return &resp, nil
}
