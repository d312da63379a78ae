package view

import "html/template"

// Role names a rendering target on a page. A page may hold a role zero,
// one or several times.
type Role string

const (
	RoleProductGrid Role = "product-grid"
	RoleBadge       Role = "cart-count"
	RolePanel       Role = "cart-panel"
	RoleBackdrop    Role = "cart-backdrop"
	RoleLineList    Role = "cart-items-container"
	RoleTotal       Role = "cart-total-price"
	RoleOverlay     Role = "success-msg"
	RoleNotice      Role = "notice"
	RoleDialog      Role = "confirm-dialog"
)

// Target is one rendering slot. Content is either markup or text; Active
// mirrors a visibility toggle.
type Target struct {
	role   Role
	html   template.HTML
	text   string
	active bool
}

func (t *Target) Role() Role { return t.role }

func (t *Target) SetHTML(h template.HTML) { t.html = h }

func (t *Target) HTML() template.HTML { return t.html }

func (t *Target) SetText(s string) { t.text = s }

func (t *Target) Text() string { return t.text }

func (t *Target) SetActive(on bool) { t.active = on }

func (t *Target) Active() bool { return t.active }

type Page struct {
	name    string
	path    string
	targets map[Role][]*Target
}

func NewPage(name, path string, layout ...Role) *Page {
	p := &Page{name: name, path: path, targets: make(map[Role][]*Target)}
	for _, r := range layout {
		p.targets[r] = append(p.targets[r], &Target{role: r})
	}
	return p
}

func (p *Page) Name() string { return p.name }

func (p *Page) Path() string { return p.path }

// Target returns the first target with the role.
func (p *Page) Target(role Role) (*Target, bool) {
	ts := p.targets[role]
	if len(ts) == 0 {
		return nil, false
	}
	return ts[0], true
}

func (p *Page) Targets(role Role) []*Target {
	return p.targets[role]
}

func (p *Page) Has(role Role) bool {
	return len(p.targets[role]) > 0
}

// StorePage is the shop layout: header and floating badges, grid, cart
// panel with backdrop, success overlay.
func StorePage() *Page {
	return NewPage("store", "/",
		RoleBadge, RoleBadge,
		RoleProductGrid,
		RolePanel, RoleBackdrop, RoleLineList, RoleTotal,
		RoleOverlay, RoleNotice, RoleDialog,
	)
}

// AboutPage shows only the header badge; it has no cart panel.
func AboutPage() *Page {
	return NewPage("about", "/about", RoleBadge, RoleNotice)
}
