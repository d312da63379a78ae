package domain

// Product is a catalog record. Price is in yen, there is no minor unit.
type Product struct {
	ID       int
	Title    string
	Price    int64
	Category string
	Image    string
}
