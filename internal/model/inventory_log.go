package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryLog is an immutable audit record of one stock adjustment. Rows
// are only ever inserted, in the same database transaction as the product
// stock mutation they describe.
type InventoryLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product      *Product  `json:"product,omitempty"`
	ChangeAmount int       `gorm:"not null" json:"change_amount"`
	Reason       string    `gorm:"type:varchar(255);not null" json:"reason"`

	// Acting user, SET NULL so the trail survives employee removal.
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	User   *User      `gorm:"constraint:OnDelete:SET NULL" json:"user,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (l *InventoryLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
