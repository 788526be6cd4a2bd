package configs

import (
	"github.com/aisyahz/tepico88/entity"
)

func sen(v int64) *int64 { return &v }

// SeedMenu loads the stall's catalog. The menu table is read-only to the
// app, so it is seeded here rather than managed through an endpoint.
func SeedMenu() error {
	db := DB()

	items := []entity.MenuItem{
		{Category: "Food", Name: "Spaghetti Alfredo Chicken", Price: sen(1200), Description: "Creamy alfredo with grilled chicken"},
		{Category: "Food", Name: "Popia Ramen Cheezy", Price: sen(650), Description: "Crispy popia with cheesy ramen filling"},
		{Category: "Food", Name: "Nasi Lemak Ayam", Price: sen(1000), Description: "Fragrant rice with fried chicken and sambal"},
		{Category: "Drink", Name: "House Drink", Price: sen(350), Description: "Signature drink of the day"},
		{Category: "Drink", Name: "Iced Lemon Tea", Price: sen(400)},
		{Category: "Combo", Name: "Combo Pasta + Drink", Price: sen(1450), Description: "Alfredo pasta with any house drink"},
		{Category: "Combo", Name: "Combo Nasi Lemak + Drink", Price: sen(1250)},
		{Category: "Dessert", Name: "Buttery Croissant", Price: sen(800), Description: "Baked fresh every evening"},
	}

	for _, item := range items {
		if err := db.FirstOrCreate(&entity.MenuItem{}, entity.MenuItem{
			Category: item.Category,
			Name:     item.Name,
		}).Error; err != nil {
			return err
		}
		if err := db.Model(&entity.MenuItem{}).
			Where("category = ? AND name = ?", item.Category, item.Name).
			Updates(map[string]any{
				"price":       item.Price,
				"description": item.Description,
				"img_url":     item.ImgURL,
			}).Error; err != nil {
			return err
		}
	}
	return nil
}
