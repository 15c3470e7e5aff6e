package auth

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/element"
)

// TestLoginPlaceholder verifies the form is rendered but posts nowhere
func TestLoginPlaceholder(t *testing.T) {
	page := NewLoginPage()
	if page.Name() != "login" {
		t.Errorf("Name() = %s; want login", page.Name())
	}

	b := element.NewBuilder()
	page.Render(b)
	html := b.String()

	if !strings.Contains(html, `id="login-form"`) {
		t.Error("Login should render the login form")
	}
	// the form must never fall back to GET, which would put the password in the URL
	if !strings.Contains(html, `method="post"`) {
		t.Error("Login form should submit with POST")
	}
	if strings.Contains(strings.ToLower(html), `method="get"`) {
		t.Error("Login form must not submit with GET")
	}
	if strings.Contains(html, "onsubmit") {
		t.Error("Login form should not rely on inline script")
	}
	if !page.SubmitsForm() {
		t.Error("Login page should declare that it posts a form")
	}
	if strings.Contains(html, "action=") {
		t.Error("Login form should have no action")
	}
	for _, id := range []string{`id="email"`, `id="password"`, `id="submit-btn"`} {
		if !strings.Contains(html, id) {
			t.Errorf("Login should contain %s", id)
		}
	}
}
