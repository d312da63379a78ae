package controller

import (
	"context"
	"errors"
	"log/slog"

	cartapp "github.com/dwikikusuma/kikuchan-store/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/kikuchan-store/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/kikuchan-store/internal/checkout/domain"
	"github.com/dwikikusuma/kikuchan-store/internal/storefront/view"
)

type PanelState int

const (
	PanelClosed PanelState = iota
	PanelOpen
)

func (s PanelState) String() string {
	if s == PanelOpen {
		return "open"
	}
	return "closed"
}

type CheckoutOutcome string

const (
	CheckoutBlocked   CheckoutOutcome = "blocked"
	CheckoutDeclined  CheckoutOutcome = "declined"
	CheckoutCompleted CheckoutOutcome = "completed"
)

type Cart interface {
	Add(ctx context.Context, productID int)
	Remove(ctx context.Context, productID int)
}

type Checkout interface {
	Quote(ctx context.Context) (checkoutdomain.Quote, error)
	Complete(ctx context.Context, q checkoutdomain.Quote) checkoutdomain.Receipt
}

// Controller owns the panel and overlay state of one page and turns
// gestures into cart mutations.
type Controller struct {
	page     *view.Page
	cart     Cart
	checkout Checkout
	fmt      view.Formatter
	msgs     view.Messages
	log      *slog.Logger

	state   PanelState
	receipt *checkoutdomain.Receipt
}

func New(page *view.Page, cart Cart, checkout Checkout, msgs view.Messages, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		page:     page,
		cart:     cart,
		checkout: checkout,
		fmt:      view.NewFormatter(),
		msgs:     msgs,
		log:      log.With("page", page.Name()),
	}
}

func (c *Controller) Register(r Registrar) {
	r.Handle(EventToggle, func(ctx context.Context, ev Event) { c.Toggle() })
	r.Handle(EventOpen, func(ctx context.Context, ev Event) { c.Open() })
	r.Handle(EventClose, func(ctx context.Context, ev Event) { c.Close() })
	r.Handle(EventBackdropDismiss, func(ctx context.Context, ev Event) { c.DismissBackdrop() })
	r.Handle(EventOverlayDismiss, func(ctx context.Context, ev Event) { c.DismissOverlay() })
	r.Handle(EventAdd, func(ctx context.Context, ev Event) { c.cart.Add(ctx, ev.ProductID) })
	r.Handle(EventRemove, func(ctx context.Context, ev Event) { c.cart.Remove(ctx, ev.ProductID) })
	r.Handle(EventCheckout, func(ctx context.Context, ev Event) { c.Checkout(ctx, ev.Prompter) })
}

// OnCartChange is a cart listener; a successful add opens the panel.
func (c *Controller) OnCartChange(ctx context.Context, change cartapp.Change) {
	if change.Kind == cartapp.ChangeAdded {
		c.Open()
	}
}

func (c *Controller) State() PanelState { return c.state }

func (c *Controller) OverlayActive() bool {
	o, ok := c.page.Target(view.RoleOverlay)
	return ok && o.Active()
}

// Receipt is the last completed checkout, if any.
func (c *Controller) Receipt() (checkoutdomain.Receipt, bool) {
	if c.receipt == nil {
		return checkoutdomain.Receipt{}, false
	}
	return *c.receipt, true
}

func (c *Controller) Toggle() {
	if c.state == PanelOpen {
		c.Close()
		return
	}
	c.Open()
}

// Open is a no-op on pages without a panel and backdrop.
func (c *Controller) Open() {
	if !c.hasPanel() {
		return
	}
	c.setPanel(PanelOpen)
}

func (c *Controller) Close() {
	if !c.hasPanel() {
		return
	}
	c.setPanel(PanelClosed)
}

func (c *Controller) DismissBackdrop() {
	c.Close()
	c.DismissOverlay()
}

func (c *Controller) DismissOverlay() {
	if o, ok := c.page.Target(view.RoleOverlay); ok {
		o.SetActive(false)
	}
	if b, ok := c.page.Target(view.RoleBackdrop); ok {
		b.SetActive(false)
	}
}

// Checkout runs the simulated purchase. On confirmation the cart is cleared
// first, then the panel closes, then the user is acknowledged through the
// overlay or, on pages without one, a notice.
func (c *Controller) Checkout(ctx context.Context, p Prompter) CheckoutOutcome {
	if p == nil {
		p = nopPrompter{}
	}

	q, err := c.checkout.Quote(ctx)
	if errors.Is(err, checkoutapp.ErrEmptyCart) {
		p.Notify(c.msgs.EmptyCheckout)
		c.log.Info("checkout blocked, cart empty")
		return CheckoutBlocked
	}
	if err != nil {
		c.log.Error("checkout quote failed", slog.Any("err", err))
		return CheckoutBlocked
	}

	if !p.Confirm(c.msgs.Confirm(c.fmt.Yen(q.Total.Amount))) {
		c.log.Info("checkout declined", slog.Int64("total", q.Total.Amount))
		return CheckoutDeclined
	}

	r := c.checkout.Complete(ctx, q)
	c.receipt = &r
	c.Close()

	if o, ok := c.page.Target(view.RoleOverlay); ok {
		o.SetText(c.msgs.Order(r.ID))
		o.SetActive(true)
		if b, ok := c.page.Target(view.RoleBackdrop); ok {
			b.SetActive(true)
		}
	} else {
		p.Notify(c.msgs.ThankYou)
	}
	return CheckoutCompleted
}

func (c *Controller) hasPanel() bool {
	return c.page.Has(view.RolePanel) && c.page.Has(view.RoleBackdrop)
}

func (c *Controller) setPanel(s PanelState) {
	c.state = s
	on := s == PanelOpen
	panel, _ := c.page.Target(view.RolePanel)
	panel.SetActive(on)
	backdrop, _ := c.page.Target(view.RoleBackdrop)
	backdrop.SetActive(on || c.OverlayActive())
	c.log.Debug("panel state", slog.String("state", s.String()))
}
