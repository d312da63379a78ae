package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/kikuchan-store/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/kikuchan-store/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Items() []checkoutapp.CartItem {
	lines := r.svc.Lines()
	items := make([]checkoutapp.CartItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, checkoutapp.CartItem{
			ProductID: l.ID,
			Title:     l.Title,
			Quantity:  int64(l.Quantity),
			Amount:    l.Price,
		})
	}
	return items
}

func (r *CartServiceReader) Clear(ctx context.Context) {
	r.svc.Clear(ctx)
}
