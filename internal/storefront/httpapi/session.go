package httpapi

import (
	"log/slog"

	cartapp "github.com/dwikikusuma/kikuchan-store/internal/cart/app"
	"github.com/dwikikusuma/kikuchan-store/internal/storefront/controller"
	"github.com/dwikikusuma/kikuchan-store/internal/storefront/view"
)

// Session binds one page to its synchronizer, controller and event bus.
type Session struct {
	Page *view.Page
	Sync *view.Synchronizer
	Ctrl *controller.Controller
	Bus  *controller.Bus
}

// NewSession subscribes the page's views and controller to cart changes and
// renders the page once.
func NewSession(page *view.Page, cart *cartapp.Service, catalog view.Catalog, checkout controller.Checkout, msgs view.Messages, log *slog.Logger) *Session {
	sync := view.NewSynchronizer(page, cart, catalog, msgs, log)
	ctrl := controller.New(page, cart, checkout, msgs, log)
	cart.Subscribe(sync.OnCartChange)
	cart.Subscribe(ctrl.OnCartChange)

	bus := controller.NewBus()
	ctrl.Register(bus)

	sync.Start()
	return &Session{Page: page, Sync: sync, Ctrl: ctrl, Bus: bus}
}
