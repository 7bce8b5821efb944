package model

// Category groups products. Deleting a category detaches its products
// (category_id set to NULL) rather than removing them.
type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`

	Products []Product `gorm:"constraint:OnDelete:SET NULL" json:"products,omitempty"`
}
