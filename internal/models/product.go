package models

// Money holds a price in every currency the storefront sells in.
type Money struct {
	USD float64 `json:"USD"`
	EUR float64 `json:"EUR"`
	TND float64 `json:"TND"`
	EGP float64 `json:"EGP"`
}

type Product struct {
	ID              string           `json:"id" gorm:"primaryKey"`
	Title           string           `json:"title" gorm:"not null"`
	Description     string           `json:"description"`
	Image           string           `json:"image"`
	CategoryID      string           `json:"categoryId" gorm:"index"`
	DiscountPercent *int             `json:"discountPercent,omitempty"`
	Price           Money            `json:"price" gorm:"embedded;embeddedPrefix:price_"`
	Variants        []ProductVariant `json:"variants,omitempty" gorm:"foreignKey:ProductID"`
}

type ProductVariant struct {
	ID        string `json:"id" gorm:"primaryKey"`
	ProductID string `json:"-" gorm:"index;not null"`
	Name      string `json:"name" gorm:"not null"`
	Price     Money  `json:"price" gorm:"embedded;embeddedPrefix:price_"`
}
