package app

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dwikikusuma/kikuchan-store/internal/cart/domain"
)

// DecodeCart parses a slot value. Empty input and a JSON null decode to an
// empty cart; anything that is not a valid line sequence is an error.
func DecodeCart(data []byte) (domain.Cart, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domain.Cart{}, nil
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(trimmed, &lines); err != nil {
		return domain.Cart{}, fmt.Errorf("decode cart: %w", err)
	}
	return domain.NewCart(lines)
}

// EncodeCart always yields a JSON array, "[]" for an empty cart.
func EncodeCart(c domain.Cart) ([]byte, error) {
	lines := c.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("encode cart: %w", err)
	}
	return b, nil
}
