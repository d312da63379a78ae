package httpapi

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<header>
  <a href="/">Shop</a> <a href="/about">About</a>
  {{if .HasPanel}}<form method="post" action="/cart/toggle"><input type="hidden" name="redirect" value="{{.Path}}"><button id="cart-toggle-btn" type="submit">Cart <span class="cart-count">{{index .Badges 0}}</span></button></form>
  {{else}}{{range .Badges}}<span class="cart-count">{{.}}</span>{{end}}{{end}}
</header>
{{if .Notice}}<div class="notice" role="alert">{{.Notice}}</div>{{end}}
{{if .Dialog}}<div class="confirm-dialog" role="dialog">
  <p>{{.Dialog}}</p>
  <form method="post" action="/checkout"><input type="hidden" name="redirect" value="{{.Path}}"><input type="hidden" name="confirm" value="yes"><button type="submit">OK</button></form>
  <a href="{{.Path}}">Cancel</a>
</div>{{end}}
{{if .HasGrid}}<section id="product-grid">{{.Grid}}</section>{{end}}
{{if .HasPanel}}
{{range $i, $b := .Badges}}{{if $i}}<span class="cart-count floating">{{$b}}</span>{{end}}{{end}}
<form method="post" action="/backdrop/dismiss"><input type="hidden" name="redirect" value="{{.Path}}"><button id="cart-backdrop" class="{{if .BackdropActive}}active{{end}}" type="submit"></button></form>
<aside id="cart-panel" class="{{if .PanelOpen}}active{{end}}">
  <form method="post" action="/cart/close"><input type="hidden" name="redirect" value="{{.Path}}"><button id="close-cart-btn" type="submit">×</button></form>
  <div id="cart-items-container">{{.Lines}}</div>
  <div id="cart-total-price">{{.Total}}</div>
  <form method="post" action="/checkout"><input type="hidden" name="redirect" value="{{.Path}}"><button class="checkout-btn" type="submit">Checkout</button></form>
</aside>
{{end}}
{{if .HasOverlay}}<div id="success-msg" class="{{if .OverlayActive}}active{{end}}">
  <p>{{.ThankYou}}</p>
  <p>{{.OverlayText}}</p>
  <form method="post" action="/overlay/dismiss"><input type="hidden" name="redirect" value="{{.Path}}"><button type="submit">OK</button></form>
</div>{{end}}
</body>
</html>
`))

type pageData struct {
	Title          string
	Path           string
	Badges         []string
	HasGrid        bool
	Grid           template.HTML
	HasPanel       bool
	PanelOpen      bool
	BackdropActive bool
	Lines          template.HTML
	Total          string
	HasOverlay     bool
	OverlayActive  bool
	OverlayText    string
	ThankYou       string
	Notice         string
	Dialog         string
}
