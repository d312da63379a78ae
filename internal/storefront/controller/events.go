package controller

import (
	"context"
	"errors"
	"fmt"
)

const (
	EventToggle          = "cart.toggle"
	EventOpen            = "cart.open"
	EventClose           = "cart.close"
	EventBackdropDismiss = "backdrop.dismiss"
	EventAdd             = "cart.add"
	EventRemove          = "cart.remove"
	EventCheckout        = "checkout"
	EventOverlayDismiss  = "overlay.dismiss"
)

var ErrUnknownEvent = errors.New("unknown event")

// Prompter shows blocking dialogs to the user.
type Prompter interface {
	Notify(msg string)
	Confirm(msg string) bool
}

type Event struct {
	Name      string
	ProductID int
	Prompter  Prompter
}

type Handler func(ctx context.Context, ev Event)

type Registrar interface {
	Handle(name string, h Handler)
}

// Bus dispatches gestures to the handlers registered for their name.
type Bus struct {
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

func (b *Bus) Handle(name string, h Handler) {
	b.handlers[name] = append(b.handlers[name], h)
}

func (b *Bus) Dispatch(ctx context.Context, ev Event) error {
	hs, ok := b.handlers[ev.Name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Name)
	}
	for _, h := range hs {
		h(ctx, ev)
	}
	return nil
}

type nopPrompter struct{}

func (nopPrompter) Notify(string) {}

func (nopPrompter) Confirm(string) bool { return false }
