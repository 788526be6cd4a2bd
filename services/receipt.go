package services

import (
	"time"

	"github.com/google/uuid"
)

type ReceiptLine struct {
	Name    string `json:"name"`
	Qty     int    `json:"qty"`
	UnitSen int64  `json:"unitSen"`
}

// Receipt is the confirmation summary shown right after a successful
// submission. It is a snapshot of the cart at submit time — prices and total
// are never recomputed from the store afterwards — and its display id is
// generated locally, not the persisted rows' ids.
type Receipt struct {
	DisplayID    string        `json:"displayId"`
	CustomerName string        `json:"customerName"`
	PickupTime   string        `json:"pickupTime"`
	Lines        []ReceiptLine `json:"lines"`
	TotalSen     int64         `json:"totalSen"`
	IssuedAt     string        `json:"issuedAt"`
}

func BuildReceipt(name, pickup string, cart Cart, snap *Catalog, now time.Time) *Receipt {
	lines := make([]ReceiptLine, 0, len(cart))
	for _, l := range cart.Lines() {
		display := "Item"
		if item, ok := snap.Item(l.MenuItemID); ok {
			display = item.Name
		}
		lines = append(lines, ReceiptLine{
			Name:    display,
			Qty:     l.Qty,
			UnitSen: snap.PriceSen(l.MenuItemID),
		})
	}
	return &Receipt{
		DisplayID:    uuid.NewString(),
		CustomerName: name,
		PickupTime:   pickup,
		Lines:        lines,
		TotalSen:     cart.TotalSen(snap),
		IssuedAt:     now.Format("2 Jan 2006, 3:04 PM"),
	}
}
