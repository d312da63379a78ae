package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatter_Yen(t *testing.T) {
	f := NewFormatter()

	t.Run("zero -> ¥0", func(t *testing.T) {
		assert.Equal(t, "¥0", f.Yen(0))
	})
	t.Run("hundreds -> no separator", func(t *testing.T) {
		assert.Equal(t, "¥800", f.Yen(800))
	})
	t.Run("thousands -> grouped", func(t *testing.T) {
		assert.Equal(t, "¥17,000", f.Yen(17000))
	})
	t.Run("millions -> grouped twice", func(t *testing.T) {
		assert.Equal(t, "¥1,234,567", f.Yen(1234567))
	})
}

func TestMessages_Confirm(t *testing.T) {
	m := JapaneseMessages()
	assert.Equal(t, "合計金額 ¥2,400 のお買い上げを確定しますか？", m.Confirm("¥2,400"))
}
