package entity

import (
	"gorm.io/gorm"
)

type Preorder struct {
	gorm.Model
	CustomerName string `json:"customerName"`
	Quantity     int    `json:"quantity"`
	PickupTime   string `json:"pickupTime"`
	Status       Status `json:"status" gorm:"type:text;default:pending"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"` // preloaded for list/manage views
}
