package app

import (
	"github.com/dwikikusuma/kikuchan-store/internal/catalog/domain"
)

type ProductRepo interface {
	Get(id int) (domain.Product, bool)
	List() []domain.Product
}
