package model

import "time"

// StoreSetting is the single-row store profile written by the setup wizard.
type StoreSetting struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	StoreName      string    `gorm:"type:varchar(255);not null" json:"store_name" validate:"required"`
	Address        string    `gorm:"type:text" json:"address"`
	Currency       string    `gorm:"type:varchar(10);not null;default:'USD'" json:"currency"`
	SetupCompleted bool      `gorm:"not null;default:false" json:"setup_completed"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
