package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionRefunded  TransactionStatus = "REFUNDED"
)

// Transaction is a sale header. It is created atomically with its items and
// the matching stock decrements; a refund restores stock and flips status.
type Transaction struct {
	BaseModel
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Customer   *Customer  `json:"customer,omitempty" validate:"-"`

	// Cashier who rang up the sale. SET NULL so transactions survive
	// employee removal.
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	User   *User      `gorm:"constraint:OnDelete:SET NULL" json:"user,omitempty" validate:"-"`

	Status        TransactionStatus `gorm:"type:varchar(20);not null;default:'COMPLETED'" json:"status"`
	PaymentMethod string            `gorm:"type:varchar(20)" json:"payment_method"`
	TotalAmount   int64             `gorm:"not null" json:"total_amount"`

	Items []TransactionItem `gorm:"constraint:OnDelete:CASCADE" json:"items" validate:"required,min=1,dive"`
}

// TransactionItem is one sale line. Unit price is snapshotted from the
// product at sale time.
type TransactionItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product       *Product  `json:"product,omitempty" validate:"-"`
	Quantity      int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice     int64     `gorm:"not null" json:"unit_price"`
	Subtotal      int64     `gorm:"not null" json:"subtotal"`
}

func (item *TransactionItem) BeforeCreate(tx *gorm.DB) (err error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return
}
