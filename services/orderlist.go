package services

import (
	"github.com/aisyahz/tepico88/entity"
)

// OrderList is a client-side mirror of the preorder table, fed by a change
// subscription after an initial full read. Each surface holds its own mirror
// and reconciles independently; the store stays the single source of truth.
type OrderList struct {
	items []entity.Preorder
}

func NewOrderList(rows []entity.Preorder) *OrderList {
	items := make([]entity.Preorder, len(rows))
	copy(items, rows)
	return &OrderList{items: items}
}

func (l *OrderList) Items() []entity.Preorder {
	return l.items
}

func (l *OrderList) Len() int {
	return len(l.items)
}

// ApplyInsert prepends the new row; the list is newest-first.
func (l *OrderList) ApplyInsert(row entity.Preorder) {
	l.items = append([]entity.Preorder{row}, l.items...)
}

// ApplyUpdate replaces the row with the matching id in place, preserving its
// position. Unknown ids are ignored; the next full reload reconciles.
func (l *OrderList) ApplyUpdate(row entity.Preorder) {
	for i := range l.items {
		if l.items[i].ID == row.ID {
			l.items[i] = row
			return
		}
	}
}

// ApplyDelete removes exactly the row with the matching id. The app never
// deletes preorders itself; this only keeps the mirror consistent when a row
// is removed externally.
func (l *OrderList) ApplyDelete(id uint) {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}
