package repository

import (
	"github.com/aisyahz/tepico88/entity"
	"gorm.io/gorm"
)

type PreorderRepository struct {
	DB *gorm.DB
}

func NewPreorderRepository(db *gorm.DB) *PreorderRepository {
	return &PreorderRepository{DB: db}
}

// ListWithItems returns every preorder joined with its menu item, newest
// first. ID breaks ties so rows created in the same second keep a stable order.
func (r *PreorderRepository) ListWithItems() ([]entity.Preorder, error) {
	var rows []entity.Preorder
	err := r.DB.
		Preload("MenuItem").
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *PreorderRepository) FindWithItem(id uint) (*entity.Preorder, error) {
	var row entity.Preorder
	if err := r.DB.Preload("MenuItem").First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateBatch persists one row per cart line inside the caller's transaction.
func (r *PreorderRepository) CreateBatch(tx *gorm.DB, rows []*entity.Preorder) error {
	for _, row := range rows {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
	}
	return nil
}

// UpdateStatus sets the status of one row. Any state is reachable from any
// state, so there is no from-state guard. Returns rows affected.
func (r *PreorderRepository) UpdateStatus(id uint, to entity.Status) (int64, error) {
	res := r.DB.Model(&entity.Preorder{}).
		Where("id = ?", id).
		Update("status", to)
	return res.RowsAffected, res.Error
}
