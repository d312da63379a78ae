package adapter

import (
	cartapp "github.com/dwikikusuma/kikuchan-store/internal/cart/app"
	catalogapp "github.com/dwikikusuma/kikuchan-store/internal/catalog/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) FindProduct(id int) (cartapp.Product, bool) {
	p, ok := r.svc.FindByID(id)
	if !ok {
		return cartapp.Product{}, false
	}

	return cartapp.Product{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		Category: p.Category,
		Image:    p.Image,
	}, true
}
