// Package pages contains the page components mounted into the shell outlet.
// This file defines the Home page.
package pages

import (
	"biblioteca/web/pages/comps"
	"biblioteca/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// HomePage is the page served for the empty path
var HomePage = Home{
	// EMBEDDED FIELD: Home gets Name(), Banner() and Title from shared.Page
	Page: shared.Page{
		Route:    "home",
		Title:    "Biblioteca Virtual",
		Subtitle: "Seu acervo de livros, sempre à mão",
	},
	Highlights: []string{
		"Consulte o acervo a qualquer hora",
		"Reserve livros antes de ir à biblioteca",
		"Acompanhe seus empréstimos",
	},
}

// Home represents the landing page
type Home struct {
	shared.Page

	// Highlights is the short feature list shown under the banner
	Highlights []string
}

// Render implements router.Target. It only writes the outlet content;
// the menu and footer belong to the shell.
func (h Home) Render(b *element.Builder) (x any) {
	b.DivClass("page page-home").R(
		element.RenderComponents(b,
			h.Banner(),
			comps.Heading{Title: "Bem-vindo"},
		),
		b.UlClass("highlights").R(
			b.Wrap(func() {
				for _, item := range h.Highlights {
					b.Li().T(item)
				}
			}),
		),
	)
	return
}
