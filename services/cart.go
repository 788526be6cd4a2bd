package services

import (
	"sort"
)

// Cart maps a menu item id to a positive quantity. Absence means zero — a
// line whose quantity drops to zero is removed, never kept as an explicit
// zero entry. Carts are transient; nothing here touches the store.
type Cart map[uint]int

func NewCart() Cart {
	return make(Cart)
}

// Increment adds one to the line, inserting it at quantity 1 if absent.
func (c Cart) Increment(id uint) {
	c[id]++
}

// Decrement subtracts one from the line, removing it at zero. Decrementing an
// absent line is a no-op.
func (c Cart) Decrement(id uint) {
	qty, ok := c[id]
	if !ok {
		return
	}
	if qty <= 1 {
		delete(c, id)
		return
	}
	c[id] = qty - 1
}

func (c Cart) Quantity(id uint) int {
	return c[id]
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

type CartLine struct {
	MenuItemID uint
	Qty        int
}

// Lines returns the cart as a slice ordered by menu item id, so batches and
// receipts come out in a stable order.
func (c Cart) Lines() []CartLine {
	lines := make([]CartLine, 0, len(c))
	for id, qty := range c {
		lines = append(lines, CartLine{MenuItemID: id, Qty: qty})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].MenuItemID < lines[j].MenuItemID })
	return lines
}

// TotalSen sums price×qty over all lines against a catalog snapshot. A line
// whose item is no longer in the catalog contributes 0, not an error.
func (c Cart) TotalSen(snap *Catalog) int64 {
	var total int64
	for id, qty := range c {
		total += snap.PriceSen(id) * int64(qty)
	}
	return total
}
