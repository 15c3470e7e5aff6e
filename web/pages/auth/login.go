package auth

import (
	"biblioteca/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// LoginPage is a placeholder sign-in page. There is no authentication behind
// it. The form posts back to the login path, where the submission is
// discarded and the page is shown again, so credentials never end up in a URL.
type LoginPage struct {
	shared.Page
}

// NewLoginPage creates the login page served at "login"
func NewLoginPage() LoginPage {
	return LoginPage{
		Page: shared.Page{
			Route:    "login",
			Title:    "Entrar",
			Subtitle: "Acesse sua conta da biblioteca",
		},
	}
}

// SubmitsForm reports that this page posts a form back to its own path
func (p LoginPage) SubmitsForm() bool {
	return true
}

// Render writes the login card into the outlet
func (p LoginPage) Render(b *element.Builder) (x any) {
	b.DivClass("page page-login").R(
		element.RenderComponents(b, p.Banner()),

		b.DivClass("auth-card").R(
			// Login form
			b.Form("id", "login-form", "method", "post").R(
				// Email field
				b.DivClass("form-group").R(
					b.LabelClass("form-label", "for", "email").T("E-mail"),
					b.Input("type", "email", "class", "form-input", "id", "email",
						"name", "email", "autocomplete", "username",
						"placeholder", "seu@email.com"),
				),

				// Password field
				b.DivClass("form-group").R(
					b.LabelClass("form-label", "for", "password").T("Senha"),
					b.Input("type", "password", "class", "form-input", "id", "password",
						"name", "password", "autocomplete", "current-password",
						"placeholder", "Sua senha"),
				),

				b.Button("type", "submit", "class", "auth-submit", "id", "submit-btn").T("Entrar"),
			),
		),
	)
	return
}
