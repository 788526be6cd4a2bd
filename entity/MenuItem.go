package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Category    string `json:"category"`
	Name        string `json:"name"`
	Price       *int64 `json:"price"` // sen; nil = not yet priced
	Description string `json:"description"`
	ImgURL      string `json:"imgUrl"`

	Preorders []Preorder `json:"-"`
}

// PriceSen resolves the nullable price; an unpriced item counts as zero.
func (m *MenuItem) PriceSen() int64 {
	if m.Price == nil {
		return 0
	}
	return *m.Price
}
