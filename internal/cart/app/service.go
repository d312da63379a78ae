package app

import (
	"context"
	"log/slog"

	"github.com/dwikikusuma/kikuchan-store/internal/cart/domain"
)

type ChangeKind string

const (
	ChangeLoaded  ChangeKind = "loaded"
	ChangeAdded   ChangeKind = "added"
	ChangeRemoved ChangeKind = "removed"
	ChangeCleared ChangeKind = "cleared"
)

type Change struct {
	Kind      ChangeKind
	ProductID int
}

// Listener runs synchronously after the new state has been saved.
type Listener func(ctx context.Context, change Change)

// Service is the single owner of the session cart. Every mutation is
// followed by a full save and then by the listeners, in registration order.
// It is not safe for concurrent use; callers serialize gestures.
type Service struct {
	catalog ProductFinder
	slot    Slot
	log     *slog.Logger

	cart      domain.Cart
	listeners []Listener
}

func NewService(catalog ProductFinder, slot Slot, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		catalog: catalog,
		slot:    slot,
		log:     log,
	}
}

func (s *Service) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Load replaces the in-memory cart with the slot contents. Missing or
// malformed data yields an empty cart.
func (s *Service) Load(ctx context.Context) {
	s.cart = s.load(ctx)
	s.log.Info("cart loaded", slog.Int("lines", len(s.cart.Lines)), slog.Int("quantity", s.cart.TotalQuantity()))
	s.notify(ctx, Change{Kind: ChangeLoaded})
}

func (s *Service) Add(ctx context.Context, productID int) {
	p, ok := s.catalog.FindProduct(productID)
	if !ok {
		s.log.Debug("add ignored, unknown product", slog.Int("product_id", productID))
		return
	}

	s.cart.Add(domain.CartLine{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		Category: p.Category,
		Image:    p.Image,
		Quantity: 1,
	})
	s.log.Info("cart add", slog.Int("product_id", productID), slog.Int("quantity", s.cart.TotalQuantity()))
	s.commit(ctx, Change{Kind: ChangeAdded, ProductID: productID})
}

// Remove is idempotent. A missing id still saves and notifies so views are
// refreshed on every gesture.
func (s *Service) Remove(ctx context.Context, productID int) {
	if !s.cart.Remove(productID) {
		s.log.Debug("remove found no line", slog.Int("product_id", productID))
	} else {
		s.log.Info("cart remove", slog.Int("product_id", productID))
	}
	s.commit(ctx, Change{Kind: ChangeRemoved, ProductID: productID})
}

func (s *Service) Clear(ctx context.Context) {
	s.cart.Clear()
	s.log.Info("cart cleared")
	s.commit(ctx, Change{Kind: ChangeCleared})
}

func (s *Service) Lines() []domain.CartLine {
	return s.cart.Snapshot()
}

func (s *Service) IsEmpty() bool {
	return s.cart.IsEmpty()
}

func (s *Service) TotalQuantity() int {
	return s.cart.TotalQuantity()
}

func (s *Service) TotalPrice() int64 {
	return s.cart.TotalPrice()
}

func (s *Service) load(ctx context.Context) domain.Cart {
	data, err := s.slot.Load(ctx)
	if err != nil {
		s.log.Warn("cart slot unreadable, starting empty", slog.Any("err", err))
		return domain.Cart{}
	}
	c, err := DecodeCart(data)
	if err != nil {
		s.log.Warn("cart slot malformed, starting empty", slog.Any("err", err))
		return domain.Cart{}
	}
	return c
}

func (s *Service) commit(ctx context.Context, change Change) {
	s.save(ctx)
	s.notify(ctx, change)
}

// save failures keep the in-memory cart; the next mutation writes the full
// state again.
func (s *Service) save(ctx context.Context) {
	data, err := EncodeCart(s.cart)
	if err != nil {
		s.log.Error("cart encode failed", slog.Any("err", err))
		return
	}
	if err := s.slot.Save(ctx, data); err != nil {
		s.log.Warn("cart save failed", slog.Any("err", err))
	}
}

func (s *Service) notify(ctx context.Context, change Change) {
	for _, l := range s.listeners {
		l(ctx, change)
	}
}
