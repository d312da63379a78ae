package app

import (
	"errors"
	"testing"

	"github.com/dwikikusuma/kikuchan-store/internal/catalog/domain"
)

type fakeRepo struct {
	products []domain.Product
}

func (f fakeRepo) Get(id int) (domain.Product, bool) {
	for _, p := range f.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (f fakeRepo) List() []domain.Product { return f.products }

func TestFindByID(t *testing.T) {
	svc := NewService(fakeRepo{products: []domain.Product{{ID: 7, Title: "Mat", Price: 100}}})

	t.Run("known id -> product", func(t *testing.T) {
		p, ok := svc.FindByID(7)
		if !ok || p.Title != "Mat" {
			t.Fatalf("got (%+v,%v)", p, ok)
		}
	})

	t.Run("unknown id -> absent", func(t *testing.T) {
		if _, ok := svc.FindByID(8); ok {
			t.Fatalf("expected absent")
		}
	})

	t.Run("unknown id -> ErrNotFound", func(t *testing.T) {
		_, err := svc.GetProduct(8)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
