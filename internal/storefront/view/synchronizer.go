package view

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"strconv"

	cartapp "github.com/dwikikusuma/kikuchan-store/internal/cart/app"
	cartdomain "github.com/dwikikusuma/kikuchan-store/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/kikuchan-store/internal/catalog/domain"
)

type CartReader interface {
	Lines() []cartdomain.CartLine
	TotalQuantity() int
	TotalPrice() int64
}

type Catalog interface {
	ListProducts() []catalogdomain.Product
}

// Synchronizer rewrites every cart-dependent target of one page from the
// cart's current state. Each call fully replaces target content.
type Synchronizer struct {
	page    *Page
	cart    CartReader
	catalog Catalog
	fmt     Formatter
	msgs    Messages
	tmpl    *template.Template
	log     *slog.Logger
}

func NewSynchronizer(page *Page, cart CartReader, catalog Catalog, msgs Messages, log *slog.Logger) *Synchronizer {
	if log == nil {
		log = slog.Default()
	}
	f := NewFormatter()
	return &Synchronizer{
		page:    page,
		cart:    cart,
		catalog: catalog,
		fmt:     f,
		msgs:    msgs,
		tmpl:    parseFragments(f),
		log:     log.With("page", page.Name()),
	}
}

func (s *Synchronizer) Page() *Page { return s.page }

// Start renders the catalog and the cart views once.
func (s *Synchronizer) Start() {
	s.RefreshCartViews()
	s.RenderCatalog()
}

// OnCartChange is a cart listener.
func (s *Synchronizer) OnCartChange(ctx context.Context, change cartapp.Change) {
	s.RefreshCartViews()
}

func (s *Synchronizer) RenderCatalog() {
	grid, ok := s.page.Target(RoleProductGrid)
	if !ok {
		s.log.Debug("product grid not on page, skipping catalog render")
		return
	}

	h, err := s.execute("product-cards", map[string]any{
		"Products": s.catalog.ListProducts(),
		"Path":     s.page.Path(),
		"AddLabel": s.msgs.AddToCart,
	})
	if err != nil {
		s.log.Error("catalog render failed", slog.Any("err", err))
		return
	}
	grid.SetHTML(h)
}

func (s *Synchronizer) RefreshCartViews() {
	count := strconv.Itoa(s.cart.TotalQuantity())
	for _, b := range s.page.Targets(RoleBadge) {
		b.SetText(count)
	}

	list, hasList := s.page.Target(RoleLineList)
	total, hasTotal := s.page.Target(RoleTotal)
	if !hasList || !hasTotal {
		s.log.Debug("cart list or total not on page, badges only")
		return
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		h, err := s.execute("cart-empty", s.msgs.EmptyCart)
		if err != nil {
			s.log.Error("empty cart render failed", slog.Any("err", err))
			return
		}
		list.SetHTML(h)
		total.SetText(s.fmt.Yen(0))
		return
	}

	h, err := s.execute("cart-rows", map[string]any{
		"Lines": lines,
		"Path":  s.page.Path(),
	})
	if err != nil {
		s.log.Error("cart render failed", slog.Any("err", err))
		return
	}
	list.SetHTML(h)
	total.SetText(s.fmt.Yen(s.cart.TotalPrice()))
}

func (s *Synchronizer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
