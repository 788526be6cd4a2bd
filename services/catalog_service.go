package services

import (
	"github.com/aisyahz/tepico88/entity"
	"github.com/aisyahz/tepico88/repository"
	"go.uber.org/zap"
)

// Catalog is an immutable snapshot of the menu as last loaded. Carts and
// receipts resolve prices against a snapshot, never against the live table.
type Catalog struct {
	Items []entity.MenuItem
	byID  map[uint]*entity.MenuItem
}

func NewCatalog(items []entity.MenuItem) *Catalog {
	snap := &Catalog{Items: items, byID: make(map[uint]*entity.MenuItem, len(items))}
	for i := range items {
		snap.byID[items[i].ID] = &items[i]
	}
	return snap
}

func (c *Catalog) Item(id uint) (*entity.MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// PriceSen returns the item's price, or 0 when the item is missing from the
// snapshot or not yet priced.
func (c *Catalog) PriceSen(id uint) int64 {
	item, ok := c.byID[id]
	if !ok {
		return 0
	}
	return item.PriceSen()
}

type CatalogService struct {
	Repo *repository.MenuItemRepository
	Log  *zap.SugaredLogger
}

func NewCatalogService(repo *repository.MenuItemRepository, log *zap.SugaredLogger) *CatalogService {
	return &CatalogService{Repo: repo, Log: log}
}

// Load reads the full menu, category then name order. A read failure degrades
// to an empty catalog rather than surfacing an error to the customer.
func (s *CatalogService) Load() *Catalog {
	items, err := s.Repo.ListAll()
	if err != nil {
		if s.Log != nil {
			s.Log.Warnw("menu load failed, serving empty catalog", "err", err)
		}
		items = nil
	}
	return NewCatalog(items)
}

type CategoryGroup struct {
	Category string            `json:"category"`
	Items    []entity.MenuItem `json:"items"`
}

// GroupByCategory partitions items into category groups in first-appearance
// order: every item lands in exactly one group, and an empty category label
// still gets its own bucket so the view can render a placeholder for it.
func GroupByCategory(items []entity.MenuItem) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, CategoryGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
