package components

import (
	"strconv"

	"github.com/rohanthewiz/element"
)

// ErrorMessage fills the outlet when a request could not be served
type ErrorMessage struct {
	Status  int
	Message string
}

func (e ErrorMessage) Render(b *element.Builder) (x any) {
	b.DivClass("page page-error").R(
		b.H1().T(strconv.Itoa(e.Status)+" - "+e.Message),
		b.P().R(
			b.A("href", "/").T("Voltar ao início"),
		),
	)
	return
}
