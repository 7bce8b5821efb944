package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gems2004/Stocky-sub001/internal/model"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll(p Pagination) ([]model.Category, int64, error)
	FindByID(id uuid.UUID) (*model.Category, error)
	FindByName(name string) (*model.Category, error)
	Update(category *model.Category) error
	Delete(id uuid.UUID) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return translate(r.db.Create(category).Error, "category")
}

func (r *categoryRepo) FindAll(p Pagination) ([]model.Category, int64, error) {
	p.Normalize()

	var total int64
	if err := r.db.Model(&model.Category{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "category")
	}

	var categories []model.Category
	err := r.db.Order("name ASC").Offset(p.Offset()).Limit(p.Limit).Find(&categories).Error
	return categories, total, translate(err, "category")
}

func (r *categoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, translate(err, "category")
	}
	return &category, nil
}

func (r *categoryRepo) FindByName(name string) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, "name = ?", name).Error; err != nil {
		return nil, translate(err, "category")
	}
	return &category, nil
}

func (r *categoryRepo) Update(category *model.Category) error {
	return translate(r.db.Save(category).Error, "category")
}

func (r *categoryRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.Category{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "category")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "category")
	}
	return nil
}
