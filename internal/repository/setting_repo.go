package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
)

type SettingRepository interface {
	Get() (*model.StoreSetting, error)
	// Initialize writes the first admin user and the store profile as one
	// transaction, failing if setup already completed.
	Initialize(admin *model.User, setting *model.StoreSetting) error
}

type settingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) SettingRepository {
	return &settingRepo{db}
}

func (r *settingRepo) Get() (*model.StoreSetting, error) {
	var setting model.StoreSetting
	if err := r.db.First(&setting).Error; err != nil {
		return nil, translate(err, "store setting")
	}
	return &setting, nil
}

func (r *settingRepo) Initialize(admin *model.User, setting *model.StoreSetting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.StoreSetting
		err := tx.First(&existing).Error
		if err == nil && existing.SetupCompleted {
			return apperror.Conflict("setup already completed")
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return translate(err, "store setting")
		}

		if err := tx.Create(admin).Error; err != nil {
			return translate(err, "user")
		}

		setting.SetupCompleted = true
		if existing.ID != 0 {
			setting.ID = existing.ID
			return translate(tx.Save(setting).Error, "store setting")
		}
		return translate(tx.Create(setting).Error, "store setting")
	})
}
