package models

// Promo is a percentage discount code. The ID is the code itself,
// stored uppercase; lookups are case-insensitive.
type Promo struct {
	ID      string  `json:"id" gorm:"primaryKey"`
	Percent float64 `json:"percent" gorm:"not null"`
	Active  bool    `json:"active"`
}
