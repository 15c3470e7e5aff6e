package components

import "github.com/rohanthewiz/element"

// Footer is the page footer (rodapé). It has no data of its own.
type Footer struct{}

func (f Footer) Render(b *element.Builder) (x any) {
	b.Footer("id", "footer").R(
		b.P().T("Biblioteca Virtual &copy; 2025"),
	)
	return
}
