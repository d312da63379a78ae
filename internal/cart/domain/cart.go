package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCart = errors.New("invalid cart")

// CartLine is a product snapshot plus the requested quantity. The JSON
// names are the durable slot's wire format.
type CartLine struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

func (l CartLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// Cart keeps insertion order and holds at most one line per product id.
type Cart struct {
	Lines []CartLine
}

func NewCart(lines []CartLine) (Cart, error) {
	c := Cart{Lines: make([]CartLine, 0, len(lines))}
	seen := make(map[int]struct{}, len(lines))
	for i, l := range lines {
		if l.Quantity <= 0 {
			return Cart{}, fmt.Errorf("%w: line %d: quantity must be positive, got %d", ErrInvalidCart, i, l.Quantity)
		}
		if l.Price < 0 {
			return Cart{}, fmt.Errorf("%w: line %d: price cannot be negative, got %d", ErrInvalidCart, i, l.Price)
		}
		if _, dup := seen[l.ID]; dup {
			return Cart{}, fmt.Errorf("%w: line %d: duplicate id %d", ErrInvalidCart, i, l.ID)
		}
		seen[l.ID] = struct{}{}
		c.Lines = append(c.Lines, l)
	}
	return c, nil
}

// Add merges by id: an existing line grows by line.Quantity in place,
// otherwise line is appended.
func (c *Cart) Add(line CartLine) {
	if i := c.indexOf(line.ID); i >= 0 {
		c.Lines[i].Quantity += line.Quantity
		return
	}
	c.Lines = append(c.Lines, line)
}

// Remove reports whether a line was dropped.
func (c *Cart) Remove(id int) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

func (c Cart) TotalPrice() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// Snapshot returns a copy safe to hand to readers.
func (c Cart) Snapshot() []CartLine {
	out := make([]CartLine, len(c.Lines))
	copy(out, c.Lines)
	return out
}

func (c Cart) indexOf(id int) int {
	for i, l := range c.Lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}
