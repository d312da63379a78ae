package view

import "html/template"

const fragments = `
{{define "product-cards"}}{{range .Products}}
<div class="product-card">
  <div class="product-image"><img src="{{.Image}}" alt="{{.Title}}"></div>
  <div class="product-info">
    <span class="product-category">{{.Category}}</span>
    <h3>{{.Title}}</h3>
    <div class="product-price">{{yen .Price}}</div>
    <form method="post" action="/cart/items/{{.ID}}">
      <input type="hidden" name="redirect" value="{{$.Path}}">
      <button class="add-to-cart" type="submit" data-product-id="{{.ID}}">{{$.AddLabel}}</button>
    </form>
  </div>
</div>{{end}}{{end}}

{{define "cart-empty"}}
<div class="cart-empty">
  <p>{{.}}</p>
</div>{{end}}

{{define "cart-rows"}}{{range .Lines}}
<div class="cart-item">
  <img src="{{.Image}}" alt="{{.Title}}" class="cart-item-img">
  <div class="cart-item-info">
    <div class="cart-item-title">{{.Title}}</div>
    <div class="cart-item-price">{{yen .Price}} × {{.Quantity}}</div>
  </div>
  <form method="post" action="/cart/items/{{.ID}}/delete">
    <input type="hidden" name="redirect" value="{{$.Path}}">
    <button class="remove-item" type="submit" data-product-id="{{.ID}}">×</button>
  </form>
</div>{{end}}{{end}}
`

func parseFragments(f Formatter) *template.Template {
	return template.Must(template.New("fragments").Funcs(template.FuncMap{
		"yen": f.Yen,
	}).Parse(fragments))
}
