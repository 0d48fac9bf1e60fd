package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	Code      string      `json:"code" gorm:"primaryKey"`
	CreatedAt time.Time   `json:"createdAt"`
	Customer  Customer    `json:"customer" gorm:"embedded;embeddedPrefix:customer_"`
	Currency  string      `json:"currency" gorm:"not null"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderCode"`
	Status    string      `json:"status" gorm:"not null;default:pending"`
	PromoCode string      `json:"promoCode,omitempty"`
	Notes     string      `json:"notes,omitempty"`
}

type OrderItem struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	OrderCode string `json:"-" gorm:"index;not null"`
	ProductID string `json:"id" gorm:"not null"`
	Qty       int    `json:"qty" gorm:"not null"`
}
