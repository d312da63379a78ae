package app

import (
	"context"
)

// Slot is the durable key-value slot holding the serialized cart. Load
// returns nil data and no error when the slot has never been written.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

type ProductFinder interface {
	FindProduct(id int) (Product, bool)
}

type Product struct {
	ID       int
	Title    string
	Price    int64
	Category string
	Image    string
}
