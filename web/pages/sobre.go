package pages

import (
	"biblioteca/web/pages/comps"
	"biblioteca/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// SobrePage is the About page, served at "sobre"
var SobrePage = Sobre{
	Page: shared.Page{
		Route: "sobre",
		Title: "Sobre",
	},
	Paragraphs: []string{
		"A Biblioteca Virtual reúne o catálogo da biblioteca em um só lugar.",
		"Este site é mantido pela equipe da biblioteca.",
	},
}

// Sobre describes the project
type Sobre struct {
	shared.Page
	Paragraphs []string
}

func (s Sobre) Render(b *element.Builder) (x any) {
	b.DivClass("page page-sobre").R(
		element.RenderComponents(b,
			s.Banner(),
			comps.Heading{Title: "Quem somos"},
		),
		b.Wrap(func() {
			for _, p := range s.Paragraphs {
				b.P().T(p)
			}
		}),
	)
	return
}
