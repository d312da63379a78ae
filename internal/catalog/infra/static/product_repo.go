package static

import (
	"github.com/dwikikusuma/kikuchan-store/internal/catalog/domain"
)

var products = []domain.Product{
	{
		ID:       1,
		Title:    "プレミアム瞑想クッション",
		Price:    8500,
		Category: "Equipment",
		Image:    "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:       2,
		Title:    "オーガニックハーブティー",
		Price:    2400,
		Category: "Food",
		Image:    "https://images.unsplash.com/photo-1594631252845-29fc4586510d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:       3,
		Title:    "マインドフルネス・ジャーナル",
		Price:    3200,
		Category: "Stationery",
		Image:    "https://images.unsplash.com/photo-1517842645767-c639042777db?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
	},
	{
		ID:       4,
		Title:    "天然エッセンシャルオイル (Lavender)",
		Price:    1800,
		Category: "Aroma",
		Image:    "https://images.unsplash.com/photo-1608571423902-eed4a5ad8108?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
	},
}

// ProductRepo serves the storefront's fixed catalog, indexed by id.
type ProductRepo struct {
	list  []domain.Product
	index map[int]int
}

func NewProductRepo() *ProductRepo {
	return NewProductRepoFrom(products)
}

// NewProductRepoFrom builds a repo over an arbitrary fixed list. The first
// record wins when ids repeat.
func NewProductRepoFrom(list []domain.Product) *ProductRepo {
	r := &ProductRepo{
		list:  make([]domain.Product, len(list)),
		index: make(map[int]int, len(list)),
	}
	copy(r.list, list)
	for i, p := range r.list {
		if _, dup := r.index[p.ID]; dup {
			continue
		}
		r.index[p.ID] = i
	}
	return r
}

func (r *ProductRepo) Get(id int) (domain.Product, bool) {
	i, ok := r.index[id]
	if !ok {
		return domain.Product{}, false
	}
	return r.list[i], true
}

func (r *ProductRepo) List() []domain.Product {
	out := make([]domain.Product, len(r.list))
	copy(out, r.list)
	return out
}
