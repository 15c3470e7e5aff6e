package views

import (
	"biblioteca/views/components"

	"github.com/rohanthewiz/element"
)

// Layout renders the host document: head with the stylesheet, and a body
// holding the given component.
func Layout(title string, body element.Component) string {
	b := element.NewBuilder()

	b.Html("lang", "pt-BR").R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Title().T(title),
			b.Link("rel", "icon", "href", "/favicon.ico"),
			b.Link("rel", "stylesheet", "href", "/static/css/app.css"),
		),
		b.Body().R(
			element.RenderComponents(b, body),
		),
	)

	return b.String()
}

// Frame is the permanent chrome: menu, the outlet, and the footer.
// Outlet holds the single page component currently mounted.
type Frame struct {
	Menu   components.Menu
	Outlet element.Component
}

func (f Frame) Render(b *element.Builder) (x any) {
	b.DivClass("app-container").R(
		element.RenderComponents(b, f.Menu),

		b.Main("id", "outlet").R(
			b.Wrap(func() {
				if f.Outlet != nil {
					element.RenderComponents(b, f.Outlet)
				}
			}),
		),

		element.RenderComponents(b, components.Footer{}),
	)
	return
}
