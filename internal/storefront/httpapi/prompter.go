package httpapi

import (
	"github.com/dwikikusuma/kikuchan-store/internal/storefront/view"
)

// formPrompter answers dialogs from the submitted form. An unanswered
// confirmation is parked in the page's dialog target and shown on the next
// render.
type formPrompter struct {
	page      *view.Page
	confirmed bool
}

func (p formPrompter) Notify(msg string) {
	if n, ok := p.page.Target(view.RoleNotice); ok {
		n.SetText(msg)
		n.SetActive(true)
	}
}

func (p formPrompter) Confirm(msg string) bool {
	d, ok := p.page.Target(view.RoleDialog)
	if p.confirmed {
		if ok {
			d.SetActive(false)
		}
		return true
	}
	if ok {
		d.SetText(msg)
		d.SetActive(true)
	}
	return false
}

// consumeOnce clears notices and dialogs after they have been shown.
func consumeOnce(page *view.Page) {
	for _, r := range []view.Role{view.RoleNotice, view.RoleDialog} {
		if t, ok := page.Target(r); ok {
			t.SetActive(false)
			t.SetText("")
		}
	}
}
