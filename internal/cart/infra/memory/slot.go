package memory

import (
	"context"
	"sync"
)

// Slot keeps the cart bytes in process memory. Nothing survives a restart.
type Slot struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

func NewSlot() *Slot {
	return &Slot{}
}

// NewSlotWith seeds the slot as if data had been saved earlier.
func NewSlotWith(data []byte) *Slot {
	s := &Slot{}
	s.data = append([]byte(nil), data...)
	return s
}

func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, nil
	}
	return append([]byte(nil), s.data...), nil
}

func (s *Slot) Save(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	s.saves++
	return nil
}

// Saves counts Save calls.
func (s *Slot) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
