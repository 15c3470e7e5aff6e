package shared

import "github.com/rohanthewiz/element"

// Banner is the heading block at the top of a page's outlet content.
type Banner struct {
	Title    string
	Subtitle string
}

// Render implements element.Component
func (b Banner) Render(builder *element.Builder) any {
	builder.Header("class", "page-banner").R(
		builder.H1().T(b.Title),
		builder.Wrap(func() {
			if b.Subtitle != "" {
				builder.P("class", "page-subtitle").T(b.Subtitle)
			}
		}),
	)
	return nil
}
