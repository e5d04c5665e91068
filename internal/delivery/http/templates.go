package http

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"

	"github.com/vitrine/frontend/internal/usecase"
)

// templateFuncs are the helpers available to every page template
var templateFuncs = template.FuncMap{
	"brl":         usecase.FormatPrice,
	"navURL":      navURL,
	"treeURL":     treeURL,
	"categoryURL": categoryURL,
	"px":          px,
	"boxStyle":    boxStyle,
	"cardStyle":   cardStyle,
	"deref":       deref,
}

// NewTemplates parses the page templates
func NewTemplates() *template.Template {
	return template.Must(template.New("vitrine").Funcs(templateFuncs).Parse(layoutTemplates + homeTemplate + treeTemplate + searchTemplate + transitionTemplate))
}

func navURL(href string) string {
	return "/ir?para=" + url.QueryEscape(href)
}

func treeURL(query string) string {
	if query == "" {
		return "/arvore"
	}
	return "/arvore?" + query
}

func categoryURL(name string) string {
	return "/buscar?categoria=" + url.QueryEscape(name)
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// boxStyle positions a laid-out card
func boxStyle(b usecase.Box) template.CSS {
	return template.CSS(fmt.Sprintf("left:%spx;top:%spx;width:%spx;height:%spx", px(b.X), px(b.Y), px(b.Width), px(b.Height)))
}

// cardStyle colors and stacks a card; every value comes from the card policy
func cardStyle(c usecase.Card) template.CSS {
	return template.CSS(fmt.Sprintf("background-color:%s;transform:%s;z-index:%d", c.Color, c.Transform, c.ZIndex))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

const layoutTemplates = `
{{define "header"}}<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
{{with .Refresh}}<meta http-equiv="refresh" content="{{.}}">{{end}}
<title>{{.Title}} · vitrine</title>
<link rel="stylesheet" href="/static/vitrine.css">
</head>
<body{{if .Transition}} class="page-transition"{{end}}>
<nav class="nav-menu">
<ul>
{{range .Menu}}<li><a class="nav-link{{if .Active}} active{{end}}" href="{{navURL .Href}}"{{with .Page}} data-page="{{.}}"{{end}}>{{.Label}}</a></li>
{{end}}</ul>
</nav>
<main>
{{end}}

{{define "footer"}}</main>
</body>
</html>
{{end}}

{{define "card"}}<div class="node-card{{if .StackIndex}} stacked-card{{end}}{{if .Leaf}} no-children{{end}}" style="{{cardStyle .}}">
<div class="node-depth">{{.Label}}</div>
<div class="node-initials">{{.Initials}}</div>
<div class="node-name">{{.Name}}</div>
<div class="node-count">{{.ProductCount}} produtos</div>
{{if not .Leaf}}<div class="node-indicator">+</div>{{end}}
</div>{{end}}

{{define "product"}}<li class="product-item">
<div class="product-header">
<div class="product-name">{{.Name}}</div>
<div class="product-price">{{brl .Price}}</div>
</div>
<div class="product-breadcrumb">
<div class="breadcrumb-label">subcategoria</div>
<div class="breadcrumb-path">{{range $i, $c := .Breadcrumb}}{{if $i}} <span class="breadcrumb-arrow">→</span> {{end}}<span class="breadcrumb-item">{{$c}}</span>{{end}}</div>
</div>
{{with .Description}}<div class="product-description">{{deref .}}</div>{{end}}
</li>{{end}}
`

const homeTemplate = `
{{define "home"}}{{template "header" .}}
{{with .Body}}<section class="home">
<h1>catálogo</h1>
<p class="home-summary"><span id="categoryCount">{{.CategoryCount}}</span> categorias · <span id="productCount">{{.ProductCount}}</span> produtos</p>
<ul class="home-categories">
{{range .Categories}}<li><a href="{{categoryURL .Name}}">{{.Name}}</a> <span class="category-count">{{.ProductCount}}</span></li>
{{end}}</ul>
</section>{{end}}
{{template "footer" .}}{{end}}
`

const treeTemplate = `
{{define "tree"}}{{template "header" .}}
{{with .Body}}<section id="treeContainer" class="tree-container" style="{{boxStyle .Bounds}}">
<svg class="tree-svg" width="{{px .Width}}" height="{{px .Height}}">
{{range .Connectors}}<line class="tree-line" data-parent="{{.ParentID}}" data-child="{{.ChildID}}" x1="{{px .X1}}" y1="{{px .Y1}}" x2="{{px .X2}}" y2="{{px .Y2}}"></line>
{{end}}</svg>
{{range .Nodes}}<div class="tree-node{{if .Expanded}} expanded{{end}}" data-node-id="{{.Node.ID}}" style="{{boxStyle .Box}}">
<div class="node-card-wrapper">
{{range .Stacked}}{{template "card" .}}{{end}}
{{if .Toggleable}}<a class="node-toggle" href="{{treeURL .ToggleQuery}}">{{template "card" .Main}}</a>{{else}}{{template "card" .Main}}{{end}}
</div>
</div>
{{end}}</section>{{end}}
{{template "footer" .}}{{end}}
`

const searchTemplate = `
{{define "search"}}{{template "header" .}}
{{with .Body}}<section class="search-page">
{{if .DropdownOpen}}<a class="dropdown-backdrop" href="/buscar" aria-label="fechar"></a>{{end}}
<div class="search-input-container">
{{if .TriggerVisible}}<a id="searchButton" class="search-button{{if .DropdownOpen}} active{{end}}" href="{{.ToggleURL}}">{{.TriggerLabel}}</a>
{{else}}<div id="selectedCategory" class="search-selected">{{.TriggerLabel}}</div>
{{end}}<form class="search-form" method="get" action="/buscar">
<input id="searchInput" type="search" name="q" value="{{.Query}}" placeholder="buscar produtos">
</form>
</div>
<div id="searchResults" class="search-results"{{if not .DropdownOpen}} hidden{{end}}>
<ul class="category-list">
{{range .Categories}}<li class="category-item" data-category="{{.Name}}"><a href="{{categoryURL .Name}}">{{.Name}}</a></li>
{{end}}</ul>
</div>
<div id="productsContainer" class="products-container"{{if not .ProductsVisible}} hidden{{end}}>
{{if .ProductsVisible}}{{if .Empty}}<div class="empty-state"><div class="empty-state-icon">🔍</div><p>{{.EmptyMessage}}</p></div>
{{else}}<h2 class="products-header">{{.Header}}</h2>
<ul class="product-list">
{{range .Results}}{{template "product" .}}
{{end}}</ul>
{{end}}{{end}}</div>
</section>{{end}}
{{template "footer" .}}{{end}}
`

const transitionTemplate = `
{{define "transition"}}{{template "header" .}}
{{with .Body}}<section class="transition">
<p>carregando <a href="{{.Target}}">{{.Label}}</a>…</p>
</section>{{end}}
{{template "footer" .}}{{end}}
`

// stylesheet is served at /static/vitrine.css
const stylesheet = `body{margin:0;font-family:system-ui,sans-serif;background:#f6f1ee;color:#2b2b2b}
body.page-transition main{opacity:.4;transition:opacity .2s}
.nav-menu ul{display:flex;gap:1rem;list-style:none;margin:0;padding:1rem 2rem;background:#2b2b2b}
.nav-link{color:#f6f1ee;text-decoration:none;padding:.25rem .5rem;border-radius:4px}
.nav-link.active{background:#9F4444}
main{padding:1.5rem 2rem}
.tree-container{position:relative;margin:0 auto}
.tree-svg{position:absolute;left:0;top:0;pointer-events:none}
.tree-line{stroke:#8B6B61;stroke-width:2}
.tree-node{position:absolute}
.node-card-wrapper{position:relative;width:100%;height:100%}
.node-toggle{display:block;width:100%;height:100%;color:inherit;text-decoration:none}
.node-card{position:absolute;inset:0;border-radius:10px;color:#fff;padding:.6rem;box-sizing:border-box;box-shadow:0 2px 6px rgba(0,0,0,.2)}
.node-card.no-children{cursor:default;opacity:.95}
.node-depth{font-size:.7rem;text-transform:uppercase;opacity:.8}
.node-initials{font-size:1.6rem;font-weight:700}
.node-name{font-weight:600}
.node-count{font-size:.8rem}
.node-indicator{position:absolute;right:.6rem;top:.4rem;font-weight:700}
.search-input-container{display:flex;gap:1rem;align-items:center;position:relative;z-index:2}
.search-button,.search-selected{padding:.75rem 1rem;border-radius:8px;background:#fff;color:#2b2b2b;text-decoration:none;min-width:18rem}
.search-button.active{outline:2px solid #9F4444}
.dropdown-backdrop{position:fixed;inset:0;z-index:1}
.search-results{position:relative;z-index:2;background:#fff;border-radius:8px;margin-top:.5rem;max-width:22rem}
.category-list{list-style:none;margin:0;padding:.5rem}
.category-item a{display:block;padding:.4rem .6rem;color:#2b2b2b;text-decoration:none}
.product-list{list-style:none;padding:0}
.product-item{background:#fff;border-radius:8px;padding:1rem;margin-bottom:.75rem}
.product-header{display:flex;justify-content:space-between;font-weight:600}
.product-price{color:#9F4444}
.breadcrumb-label{font-size:.7rem;text-transform:uppercase;opacity:.6}
.breadcrumb-arrow{opacity:.6}
.empty-state{text-align:center;padding:3rem;opacity:.7}
.empty-state-icon{font-size:2rem}
`
