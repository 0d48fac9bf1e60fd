package models

type Banner struct {
	ID     string `json:"id" gorm:"primaryKey"`
	Title  string `json:"title" gorm:"not null"`
	Image  string `json:"image"`
	Active bool   `json:"active"`
}
