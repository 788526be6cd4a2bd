package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/aisyahz/tepico88/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.MenuItem{}, &entity.Preorder{}))
	return db
}

func TestMenuItemListAllOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuItemRepository(db)

	p := func(v int64) *int64 { return &v }
	require.NoError(t, db.Create(&[]entity.MenuItem{
		{Category: "Food", Name: "Spaghetti Alfredo Chicken", Price: p(1200)},
		{Category: "Combo", Name: "Combo Pasta + Drink", Price: p(1450)},
		{Category: "Drink", Name: "Iced Lemon Tea", Price: p(400)},
		{Category: "Drink", Name: "House Drink", Price: p(350)},
	}).Error)

	items, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, items, 4)

	// category asc, then name asc — not insertion order
	assert.Equal(t, "Combo Pasta + Drink", items[0].Name)
	assert.Equal(t, "House Drink", items[1].Name)
	assert.Equal(t, "Iced Lemon Tea", items[2].Name)
	assert.Equal(t, "Spaghetti Alfredo Chicken", items[3].Name)
}

func TestPreorderListNewestFirstWithJoin(t *testing.T) {
	db := newTestDB(t)
	repo := NewPreorderRepository(db)

	item := entity.MenuItem{Category: "Food", Name: "Nasi Lemak Ayam"}
	require.NoError(t, db.Create(&item).Error)

	base := time.Now().Add(-time.Hour)
	rows := []entity.Preorder{
		{CustomerName: "Farid", MenuItemID: item.ID, Quantity: 1, PickupTime: "7 PM", Status: entity.StatusPending},
		{CustomerName: "Aina", MenuItemID: item.ID, Quantity: 2, PickupTime: "8 PM", Status: entity.StatusPending},
		{CustomerName: "Mei", MenuItemID: item.ID, Quantity: 1, PickupTime: "9 PM", Status: entity.StatusPending},
	}
	for i := range rows {
		rows[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	got, err := repo.ListWithItems()
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Mei", got[0].CustomerName)
	assert.Equal(t, "Aina", got[1].CustomerName)
	assert.Equal(t, "Farid", got[2].CustomerName)

	// joined item data is present for display
	assert.Equal(t, "Nasi Lemak Ayam", got[0].MenuItem.Name)
}

func TestUpdateStatusRowsAffected(t *testing.T) {
	db := newTestDB(t)
	repo := NewPreorderRepository(db)

	row := entity.Preorder{CustomerName: "Aina", Quantity: 1, PickupTime: "8 PM", Status: entity.StatusPending}
	require.NoError(t, db.Create(&row).Error)

	affected, err := repo.UpdateStatus(row.ID, entity.StatusReady)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.UpdateStatus(9999, entity.StatusReady)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
