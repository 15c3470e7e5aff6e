package components

import (
	"github.com/rohanthewiz/element"
)

// MenuItem is one navigation link. Route is the route name used to mark the
// active item; Path is relative to the application base.
type MenuItem struct {
	Label string
	Route string
	Path  string
}

// DefaultMenuItems are the links shown in the top menu
var DefaultMenuItems = []MenuItem{
	{Label: "Início", Route: "home", Path: ""},
	{Label: "Sobre", Route: "sobre", Path: "sobre"},
	{Label: "Login", Route: "login", Path: "login"},
}

// Menu is the navigation bar rendered above the outlet on every page
type Menu struct {
	Brand      string
	BasePath   string
	Items      []MenuItem
	ActivePage string
}

func (m Menu) Render(b *element.Builder) (x any) {
	b.Header("id", "menu").R(
		b.A("href", m.href(""), "class", "menu-brand").T(m.Brand),
		b.Nav("class", "menu-nav").R(
			b.UlClass("nav-list").R(
				element.ForEach(m.Items, func(item MenuItem) {
					b.Li().R(
						b.A("href", m.href(item.Path),
							"class", m.activeClass(item.Route)).T(item.Label),
					)
				}),
			),
		),
	)
	return
}

func (m Menu) activeClass(page string) string {
	if m.ActivePage == page {
		return "nav-link active"
	}
	return "nav-link"
}

func (m Menu) href(path string) string {
	base := m.BasePath
	if base == "" {
		base = "/"
	}
	return base + path
}
