package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gems2004/Stocky-sub001/internal/model"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll(p Pagination) ([]model.Supplier, int64, error)
	FindByID(id uuid.UUID) (*model.Supplier, error)
	FindByName(name string) (*model.Supplier, error)
	Update(supplier *model.Supplier) error
	Delete(id uuid.UUID) error
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return translate(r.db.Create(supplier).Error, "supplier")
}

func (r *supplierRepo) FindAll(p Pagination) ([]model.Supplier, int64, error) {
	p.Normalize()

	var total int64
	if err := r.db.Model(&model.Supplier{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "supplier")
	}

	var suppliers []model.Supplier
	err := r.db.Order("name ASC").Offset(p.Offset()).Limit(p.Limit).Find(&suppliers).Error
	return suppliers, total, translate(err, "supplier")
}

func (r *supplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.First(&supplier, "id = ?", id).Error; err != nil {
		return nil, translate(err, "supplier")
	}
	return &supplier, nil
}

func (r *supplierRepo) FindByName(name string) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.First(&supplier, "name = ?", name).Error; err != nil {
		return nil, translate(err, "supplier")
	}
	return &supplier, nil
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return translate(r.db.Save(supplier).Error, "supplier")
}

func (r *supplierRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.Supplier{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "supplier")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "supplier")
	}
	return nil
}
