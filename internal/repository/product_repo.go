package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gems2004/Stocky-sub001/internal/model"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(p Pagination) ([]model.Product, int64, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindByBarcode(barcode string) (*model.Product, error)
	Search(query string, p Pagination) ([]model.Product, int64, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return translate(r.db.Create(product).Error, "product")
}

func (r *productRepo) FindAll(p Pagination) ([]model.Product, int64, error) {
	p.Normalize()

	var total int64
	if err := r.db.Model(&model.Product{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "product")
	}

	var products []model.Product
	err := r.db.Preload("Category").Preload("Supplier").
		Order("name ASC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&products).Error
	return products, total, translate(err, "product")
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").Preload("Supplier").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "product")
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	if err != nil {
		return nil, translate(err, "product")
	}
	return &product, nil
}

func (r *productRepo) FindByBarcode(barcode string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "barcode = ?", barcode).Error
	if err != nil {
		return nil, translate(err, "product")
	}
	return &product, nil
}

// Search runs a substring match over name, sku and barcode.
func (r *productRepo) Search(query string, p Pagination) ([]model.Product, int64, error) {
	p.Normalize()
	pattern := "%" + query + "%"

	match := func(db *gorm.DB) *gorm.DB {
		return db.Where("name ILIKE ? OR sku ILIKE ? OR barcode ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := match(r.db.Model(&model.Product{})).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "product")
	}

	var products []model.Product
	err := match(r.db.Preload("Category").Preload("Supplier")).
		Order("name ASC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&products).Error
	return products, total, translate(err, "product")
}

func (r *productRepo) Update(product *model.Product) error {
	return translate(r.db.Save(product).Error, "product")
}

// Delete is soft: gorm fills deleted_at, historical rows keep resolving.
func (r *productRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "product")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "product")
	}
	return nil
}
