package model

// Supplier is a product source. Hard-deleted; products keep running with
// supplier_id set to NULL.
type Supplier struct {
	BaseModel
	Name          string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	ContactPerson string `gorm:"type:varchar(255)" json:"contact_person"`
	Email         string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone         string `gorm:"type:varchar(30)" json:"phone"`
	Address       string `gorm:"type:text" json:"address"`

	Products []Product `gorm:"constraint:OnDelete:SET NULL" json:"products,omitempty"`
}
