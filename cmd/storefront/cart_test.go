package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dwikikusuma/kikuchan-store/internal/cart/infra/memory"
)

func TestPrintCart(t *testing.T) {
	ctx := context.Background()
	cart := newCart(ctx, newCatalog(), memory.NewSlot(), nil)
	cart.Add(ctx, 1)
	cart.Add(ctx, 1)
	cart.Add(ctx, 4)

	var buf bytes.Buffer
	assert.NoError(t, printCart(&buf, cart))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[1], "¥8,500")
	assert.Contains(t, lines[1], "¥17,000")
	assert.Contains(t, lines[3], "¥18,800")
}
