package services

import (
	"math"

	"github.com/aisyahz/tepico88/entity"
)

type SalesSummary struct {
	CompletedSen int64   `json:"completedSen"`
	TargetSen    int64   `json:"targetSen"`
	Percent      float64 `json:"percent"`
	RemainingSen int64   `json:"remainingSen"`
}

// Summarize computes sales progress toward a fixed target. Only orders that
// reached ready or collected count; percent is capped at 100 and remaining
// never goes negative. Pure function — recomputed on every order-list change,
// nothing persisted.
func Summarize(orders []entity.Preorder, targetSen int64) SalesSummary {
	var completed int64
	for i := range orders {
		o := &orders[i]
		if !o.Status.Completed() {
			continue
		}
		completed += o.MenuItem.PriceSen() * int64(o.Quantity)
	}

	var percent float64
	if targetSen > 0 {
		percent = float64(completed) / float64(targetSen) * 100
		percent = math.Round(percent*10) / 10
		if percent > 100 {
			percent = 100
		}
	}

	remaining := targetSen - completed
	if remaining < 0 {
		remaining = 0
	}

	return SalesSummary{
		CompletedSen: completed,
		TargetSen:    targetSen,
		Percent:      percent,
		RemainingSen: remaining,
	}
}
