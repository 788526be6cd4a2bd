package repository

import (
	"github.com/aisyahz/tepico88/entity"
	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

// ListAll returns every menu item sorted by category then name, the grouping
// order the storefront renders in.
func (r *MenuItemRepository) ListAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Order("category ASC").
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
