package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gems2004/Stocky-sub001/internal/model"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindAll(p Pagination) ([]model.Customer, int64, error)
	FindByID(id uuid.UUID) (*model.Customer, error)
	Update(customer *model.Customer) error
	Delete(id uuid.UUID) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return translate(r.db.Create(customer).Error, "customer")
}

func (r *customerRepo) FindAll(p Pagination) ([]model.Customer, int64, error) {
	p.Normalize()

	var total int64
	if err := r.db.Model(&model.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "customer")
	}

	var customers []model.Customer
	err := r.db.Order("name ASC").Offset(p.Offset()).Limit(p.Limit).Find(&customers).Error
	return customers, total, translate(err, "customer")
}

func (r *customerRepo) FindByID(id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		return nil, translate(err, "customer")
	}
	return &customer, nil
}

func (r *customerRepo) Update(customer *model.Customer) error {
	return translate(r.db.Save(customer).Error, "customer")
}

func (r *customerRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.Customer{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "customer")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "customer")
	}
	return nil
}
