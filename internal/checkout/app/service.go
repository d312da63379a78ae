package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dwikikusuma/kikuchan-store/internal/checkout/domain"
)

type Cart interface {
	Items() []CartItem
	Clear(ctx context.Context)
}

type CartItem struct {
	ProductID int
	Title     string
	Quantity  int64
	Amount    int64
}

var ErrEmptyCart = errors.New("cart is empty")

type Service struct {
	Cart Cart

	log *slog.Logger
	now func() time.Time
}

func NewService(cart Cart, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		Cart: cart,
		log:  log,
		now:  time.Now,
	}
}

func (s *Service) Quote(ctx context.Context) (domain.Quote, error) {
	items := s.Cart.Items()
	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, 0, len(items))
	var totalAmount int64
	for _, it := range items {
		if it.Quantity <= 0 {
			return domain.Quote{}, fmt.Errorf("product %d: quantity must be greater than zero: %d", it.ProductID, it.Quantity)
		}
		lineTotal := it.Amount * it.Quantity
		lines = append(lines, domain.QuoteLine{
			ProductID: it.ProductID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: domain.Money{Currency: domain.CurrencyJPY, Amount: it.Amount},
			LineTotal: domain.Money{Currency: domain.CurrencyJPY, Amount: lineTotal},
		})
		totalAmount += lineTotal
	}

	return domain.Quote{
		Lines: lines,
		Total: domain.Money{Currency: domain.CurrencyJPY, Amount: totalAmount},
	}, nil
}

// Complete settles the quote and empties the cart. No payment happens.
func (s *Service) Complete(ctx context.Context, q domain.Quote) domain.Receipt {
	r := domain.Receipt{
		ID:        uuid.NewString(),
		Total:     q.Total,
		ItemCount: q.ItemCount(),
		PlacedAt:  s.now().UTC(),
	}
	s.Cart.Clear(ctx)
	s.log.Info("checkout completed",
		slog.String("receipt_id", r.ID),
		slog.Int64("total", r.Total.Amount),
		slog.Int64("items", r.ItemCount),
	)
	return r
}
