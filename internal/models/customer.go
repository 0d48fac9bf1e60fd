package models

// Customer is the contact block captured at checkout. Orders embed it;
// there are no customer accounts.
type Customer struct {
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"not null"`
	Whatsapp string `json:"whatsapp" gorm:"not null"`
}
